package artist

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/showtimehq/showtime/internal/core/reference"
	"github.com/showtimehq/showtime/internal/platform/apperr"
	"github.com/showtimehq/showtime/internal/platform/dberr"
	"github.com/showtimehq/showtime/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns the minimal id/name projection for the artist index.
func (service *Service) List(context context.Context) ([]ListItem, error) {
	items, err := service.repo.ListNames(context)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []ListItem{}
	}
	return items, nil
}

// Search matches artists by case-insensitive substring of the name. Each hit
// counts all of the artist's shows, past included.
func (service *Service) Search(context context.Context, term string) (SearchResults, error) {
	hits, err := service.repo.SearchByName(context, term)
	if err != nil {
		return SearchResults{Data: []SearchHit{}}, err
	}
	if hits == nil {
		hits = []SearchHit{}
	}
	return SearchResults{Count: len(hits), Data: hits}, nil
}

// Get returns the bare artist record, used by the edit form.
func (service *Service) Get(context context.Context, id int) (*Artist, error) {
	a, err := service.repo.GetArtist(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound("Artist")
	}
	return a, err
}

// GetDetail returns the artist page structure: the record plus its shows
// split into past and upcoming sets relative to the query-time clock.
func (service *Service) GetDetail(context context.Context, id int) (*Detail, error) {
	a, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	past, err := service.repo.PastShows(context, id)
	if err != nil {
		return nil, err
	}

	upcoming, err := service.repo.UpcomingShows(context, id)
	if err != nil {
		return nil, err
	}

	if past == nil {
		past = []ShowEntry{}
	}
	if upcoming == nil {
		upcoming = []ShowEntry{}
	}

	return &Detail{
		Artist:             *a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Create validates and persists a new artist. Nothing is persisted while any
// validation rule fails.
func (service *Service) Create(context context.Context, a *Artist) error {
	if err := validateArtist(a); err != nil {
		return err
	}

	if strings.TrimSpace(a.SeekingDescription) == "" {
		a.SeekingDescription = DefaultSeekingDescription
	}

	if err := service.repo.CreateArtist(context, a); err != nil {
		return err
	}

	service.logger.Info("artist_created", slog.Int("artist_id", a.ID), slog.String("name", a.Name))
	return nil
}

// Update applies every validated field to the artist with the given id.
// A missing id is a caught NOT_FOUND outcome, never a fault.
func (service *Service) Update(context context.Context, id int, a *Artist) error {
	a.ID = id
	if err := validateArtist(a); err != nil {
		return err
	}

	if err := service.repo.UpdateArtist(context, a); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Artist")
		}
		return err
	}

	service.logger.Info("artist_updated", slog.Int("artist_id", a.ID))
	return nil
}

func validateArtist(a *Artist) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, a.Name).MaxLen(FieldName, a.Name, 200)
	validator.Required(FieldCity, a.City).MaxLen(FieldCity, a.City, 120)
	validator.Required(FieldState, a.State)

	if a.State != "" {
		validator.OneOf(FieldState, a.State, reference.StateCodes...)
	}

	validator.EachOneOf(FieldGenres, a.Genres, reference.GenreTags...)
	validator.Phone(FieldPhone, a.Phone)
	validator.URL(FieldImageLink, a.ImageLink)
	validator.URL(FieldFacebookLink, a.FacebookLink)
	validator.URL(FieldWebsiteLink, a.WebsiteLink)

	return validator.Err()
}
