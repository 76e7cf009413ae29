package venue_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtimehq/showtime/internal/core/venue"
	"github.com/showtimehq/showtime/internal/platform/apperr"
	"github.com/showtimehq/showtime/internal/platform/dberr"
)

// fakeRepository is an in-memory stand-in for the Postgres store. It mirrors
// the storage semantics the schema enforces: ILIKE substring matching,
// upcoming-show counting, and the ON DELETE CASCADE from venues to shows.
type fakeRepository struct {
	venues map[int]*venue.Venue
	// shows maps venue id to show start times.
	shows  map[int][]time.Time
	nextID int

	listErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		venues: make(map[int]*venue.Venue),
		shows:  make(map[int][]time.Time),
		nextID: 1,
	}
}

func (f *fakeRepository) seed(name, city, state string, showTimes ...time.Time) int {
	id := f.nextID
	f.nextID++
	f.venues[id] = &venue.Venue{ID: id, Name: name, City: city, State: state, Genres: []string{}}
	f.shows[id] = showTimes
	return id
}

func (f *fakeRepository) upcomingCount(id int) int {
	count := 0
	for _, start := range f.shows[id] {
		if start.After(time.Now()) {
			count++
		}
	}
	return count
}

func (f *fakeRepository) ListAreaRows(_ context.Context) ([]venue.AreaRow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var rows []venue.AreaRow
	for id := 1; id < f.nextID; id++ {
		v, ok := f.venues[id]
		if !ok {
			continue
		}
		rows = append(rows, venue.AreaRow{
			ID: v.ID, Name: v.Name, City: v.City, State: v.State,
			NumUpcomingShows: f.upcomingCount(id),
		})
	}
	return rows, nil
}

func (f *fakeRepository) SearchByName(_ context.Context, term string) ([]venue.SearchHit, error) {
	var hits []venue.SearchHit
	for id := 1; id < f.nextID; id++ {
		v, ok := f.venues[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			hits = append(hits, venue.SearchHit{ID: v.ID, Name: v.Name, NumUpcomingShows: f.upcomingCount(id)})
		}
	}
	return hits, nil
}

func (f *fakeRepository) GetVenue(_ context.Context, id int) (*venue.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (f *fakeRepository) PastShows(_ context.Context, venueID int) ([]venue.ShowEntry, error) {
	var entries []venue.ShowEntry
	for _, start := range f.shows[venueID] {
		if start.Before(time.Now()) {
			entries = append(entries, venue.ShowEntry{StartTime: start})
		}
	}
	return entries, nil
}

func (f *fakeRepository) UpcomingShows(_ context.Context, venueID int) ([]venue.ShowEntry, error) {
	var entries []venue.ShowEntry
	for _, start := range f.shows[venueID] {
		if start.After(time.Now()) {
			entries = append(entries, venue.ShowEntry{StartTime: start})
		}
	}
	return entries, nil
}

func (f *fakeRepository) CreateVenue(_ context.Context, v *venue.Venue) error {
	v.ID = f.nextID
	f.nextID++
	copied := *v
	f.venues[v.ID] = &copied
	return nil
}

func (f *fakeRepository) UpdateVenue(_ context.Context, v *venue.Venue) error {
	if _, ok := f.venues[v.ID]; !ok {
		return dberr.ErrNotFound
	}
	copied := *v
	f.venues[v.ID] = &copied
	return nil
}

func (f *fakeRepository) DeleteVenue(_ context.Context, id int) error {
	// Cascade: the shows rows go with the venue, missing ids are a no-op.
	delete(f.venues, id)
	delete(f.shows, id)
	return nil
}

func newService(repo venue.Repository) *venue.Service {
	return venue.NewService(repo, slog.Default())
}

/*
TestListAreas_GroupsByStateAndCity verifies venues bucket by exact
(state, city) pairs with per-venue upcoming counts attached.
*/
func TestListAreas_GroupsByStateAndCity(t *testing.T) {
	repo := newFakeRepository()
	future := time.Now().Add(48 * time.Hour)
	repo.seed("The Musical Hop", "San Francisco", "CA", future)
	repo.seed("Park Square Live Music & Coffee", "San Francisco", "CA")
	repo.seed("The Dueling Pianos Bar", "New York", "NY")

	areas, err := newService(repo).ListAreas(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 2)

	sanFrancisco := areas[0]
	assert.Equal(t, "San Francisco", sanFrancisco.City)
	assert.Equal(t, "CA", sanFrancisco.State)
	require.Len(t, sanFrancisco.Venues, 2)
	assert.Equal(t, 1, sanFrancisco.Venues[0].NumUpcomingShows)
	assert.Equal(t, 0, sanFrancisco.Venues[1].NumUpcomingShows)

	assert.Equal(t, "New York", areas[1].City)
	require.Len(t, areas[1].Venues, 1)
}

/*
TestListAreas_StoreFailure verifies that a failed listing query propagates to
the handler boundary, where it degrades to an empty page plus a notice.
*/
func TestListAreas_StoreFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.listErr = apperr.Internal(assert.AnError)

	areas, err := newService(repo).ListAreas(context.Background())
	assert.Error(t, err)
	assert.Empty(t, areas)
}

/*
TestSearch_CaseInsensitiveSubstring pins the documented search fixtures:
"Hop" finds The Musical Hop, "Music" finds both venues, an empty term
matches every row.
*/
func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	repo := newFakeRepository()
	repo.seed("The Musical Hop", "San Francisco", "CA", time.Now().Add(time.Hour))
	repo.seed("Park Square Live Music & Coffee", "San Francisco", "CA")
	service := newService(repo)

	results, err := service.Search(context.Background(), "Hop")
	require.NoError(t, err)
	require.Equal(t, 1, results.Count)
	assert.Equal(t, "The Musical Hop", results.Data[0].Name)
	assert.GreaterOrEqual(t, results.Data[0].NumUpcomingShows, 1)

	results, err = service.Search(context.Background(), "Music")
	require.NoError(t, err)
	assert.Equal(t, 2, results.Count)

	results, err = service.Search(context.Background(), "mUSIC")
	require.NoError(t, err)
	assert.Equal(t, 2, results.Count)

	results, err = service.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, results.Count)
}

/*
TestCreate_Valid verifies the happy path: the record persists, the genre list
survives unchanged, and a blank seeking description receives the default.
*/
func TestCreate_Valid(t *testing.T) {
	repo := newFakeRepository()
	input := &venue.Venue{
		Name:   "The Musical Hop",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "123-123-1234",
		Genres: []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
	}

	err := newService(repo).Create(context.Background(), input)
	require.NoError(t, err)
	require.NotZero(t, input.ID)

	stored := repo.venues[input.ID]
	require.NotNil(t, stored)
	assert.Equal(t, []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"}, stored.Genres)
	assert.Equal(t, venue.DefaultSeekingDescription, stored.SeekingDescription)
}

/*
TestCreate_ValidationFailure verifies that no row is written when a required
field is missing and that every rule failure is reported.
*/
func TestCreate_ValidationFailure(t *testing.T) {
	repo := newFakeRepository()
	before := len(repo.venues)

	err := newService(repo).Create(context.Background(), &venue.Venue{
		City:  "San Francisco",
		State: "ZZ", // not a state code
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Len(t, ae.Details, 2) // name missing, state invalid
	assert.Equal(t, before, len(repo.venues))
}

/*
TestUpdate_MissingID verifies that updating a non-existent venue is a caught
NOT_FOUND outcome, not a fault, and changes nothing.
*/
func TestUpdate_MissingID(t *testing.T) {
	repo := newFakeRepository()

	err := newService(repo).Update(context.Background(), 999, &venue.Venue{
		Name:  "Ghost Hall",
		City:  "Nowhere",
		State: "CA",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Empty(t, repo.venues)
}

/*
TestDelete_CascadesToShows verifies the delete path: the venue and its shows
are gone afterwards, and deleting a missing id still reports success.
*/
func TestDelete_CascadesToShows(t *testing.T) {
	repo := newFakeRepository()
	id := repo.seed("The Musical Hop", "San Francisco", "CA",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	service := newService(repo)

	require.NoError(t, service.Delete(context.Background(), id))
	assert.Empty(t, repo.venues)
	assert.Empty(t, repo.shows)

	// Missing id: silent no-op, still success.
	assert.NoError(t, service.Delete(context.Background(), id))
}

/*
TestGetDetail_SplitsShows verifies past/upcoming partitioning with counts.
*/
func TestGetDetail_SplitsShows(t *testing.T) {
	repo := newFakeRepository()
	id := repo.seed("The Musical Hop", "San Francisco", "CA",
		time.Now().Add(-48*time.Hour),
		time.Now().Add(-time.Hour),
		time.Now().Add(72*time.Hour),
	)

	detail, err := newService(repo).GetDetail(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 2, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Len(t, detail.PastShows, 2)
	assert.Len(t, detail.UpcomingShows, 1)
}

/*
TestGetDetail_Missing verifies detail lookups escalate instead of degrading.
*/
func TestGetDetail_Missing(t *testing.T) {
	repo := newFakeRepository()

	_, err := newService(repo).GetDetail(context.Background(), 42)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Venue not found", ae.Message)
}
