package show_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtimehq/showtime/internal/core/show"
	"github.com/showtimehq/showtime/internal/platform/apperr"
)

// fakeRepository mirrors the referential behavior of the Postgres store:
// name lookups report absence without failing, and an insert against a
// missing reference is rejected the way a foreign key would reject it.
type fakeRepository struct {
	venues  map[int]string
	artists map[int]string
	shows   []show.Show
	nextID  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		venues:  make(map[int]string),
		artists: make(map[int]string),
		nextID:  1,
	}
}

func (f *fakeRepository) ListShows(_ context.Context) ([]show.ListingRow, error) {
	var rows []show.ListingRow
	for _, s := range f.shows {
		rows = append(rows, show.ListingRow{
			VenueID:    s.VenueID,
			VenueName:  f.venues[s.VenueID],
			ArtistID:   s.ArtistID,
			ArtistName: f.artists[s.ArtistID],
			StartTime:  s.StartTime,
		})
	}
	return rows, nil
}

func (f *fakeRepository) CreateShow(_ context.Context, s *show.Show) error {
	if _, ok := f.venues[s.VenueID]; !ok {
		return apperr.Unprocessable("Referenced record does not exist")
	}
	if _, ok := f.artists[s.ArtistID]; !ok {
		return apperr.Unprocessable("Referenced record does not exist")
	}
	s.ID = f.nextID
	f.nextID++
	f.shows = append(f.shows, *s)
	return nil
}

func (f *fakeRepository) VenueName(_ context.Context, id int) (string, bool, error) {
	name, ok := f.venues[id]
	return name, ok, nil
}

func (f *fakeRepository) ArtistName(_ context.Context, id int) (string, bool, error) {
	name, ok := f.artists[id]
	return name, ok, nil
}

func newService(repo show.Repository) *show.Service {
	return show.NewService(repo, slog.Default())
}

/*
TestCreate_Valid verifies a booking against existing records succeeds and
returns the artist name for the success notice.
*/
func TestCreate_Valid(t *testing.T) {
	repo := newFakeRepository()
	repo.venues[1] = "The Musical Hop"
	repo.artists[4] = "Guns N Petals"

	input := &show.Show{VenueID: 1, ArtistID: 4, StartTime: time.Now().Add(48 * time.Hour)}
	artistName, err := newService(repo).Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", artistName)
	require.Len(t, repo.shows, 1)
	assert.NotZero(t, input.ID)
}

/*
TestCreate_DanglingReferences verifies that missing venue/artist references do
not short-circuit the attempt: the insert is still tried, and the storage
layer's rejection is what surfaces as UNPROCESSABLE.
*/
func TestCreate_DanglingReferences(t *testing.T) {
	repo := newFakeRepository()

	_, err := newService(repo).Create(context.Background(), &show.Show{
		VenueID:   999,
		ArtistID:  999,
		StartTime: time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNPROCESSABLE", ae.Code)
	assert.Empty(t, repo.shows)
}

/*
TestCreate_Validation verifies non-positive ids and a zero start time are all
reported before any lookup or insert.
*/
func TestCreate_Validation(t *testing.T) {
	repo := newFakeRepository()

	_, err := newService(repo).Create(context.Background(), &show.Show{})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Len(t, ae.Details, 3)
	assert.Empty(t, repo.shows)
}

/*
TestList_AnnotatesTiming verifies the listing carries the past/upcoming
classification for each row.
*/
func TestList_AnnotatesTiming(t *testing.T) {
	repo := newFakeRepository()
	repo.venues[1] = "The Musical Hop"
	repo.artists[4] = "Guns N Petals"
	repo.shows = []show.Show{
		{ID: 1, VenueID: 1, ArtistID: 4, StartTime: time.Now().Add(-time.Hour)},
		{ID: 2, VenueID: 1, ArtistID: 4, StartTime: time.Now().Add(time.Hour)},
	}

	rows, err := newService(repo).List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, show.TimingPast, rows[0].Timing)
	assert.Equal(t, show.TimingUpcoming, rows[1].Timing)
	assert.Equal(t, "The Musical Hop", rows[0].VenueName)
}

/*
TestList_Empty verifies an empty catalogue lists as an empty slice, not nil.
*/
func TestList_Empty(t *testing.T) {
	rows, err := newService(newFakeRepository()).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
