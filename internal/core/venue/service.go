package venue

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

// ListAreas returns all venues bucketed by (state, city), each annotated
// with its count of upcoming shows.
func (service *Service) ListAreas(context context.Context) ([]Area, error) {
	rows, err := service.repo.ListAreaRows(context)
	if err != nil {
		return nil, err
	}
	return groupByArea(rows), nil
}

// Search matches venues by case-insensitive substring of the name.
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

// Get returns the bare venue record, used by the edit form.
func (service *Service) Get(context context.Context, id int) (*Venue, error) {
	v, err := service.repo.GetVenue(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound("Venue")
	}
	return v, err
}

// GetDetail returns the venue page structure: the record plus its shows
// split into past and upcoming sets relative to the query-time clock.
func (service *Service) GetDetail(context context.Context, id int) (*Detail, error) {
	v, err := service.Get(context, id)
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
		Venue:              *v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Create validates and persists a new venue. Nothing is persisted while any
// validation rule fails.
func (service *Service) Create(context context.Context, v *Venue) error {
	if err := validateVenue(v); err != nil {
		return err
	}

	if strings.TrimSpace(v.SeekingDescription) == "" {
		v.SeekingDescription = DefaultSeekingDescription
	}

	if err := service.repo.CreateVenue(context, v); err != nil {
		return err
	}

	service.logger.Info("venue_created", slog.Int("venue_id", v.ID), slog.String("name", v.Name))
	return nil
}

// Update applies every validated field to the venue with the given id.
// A missing id is a caught NOT_FOUND outcome, never a fault.
func (service *Service) Update(context context.Context, id int, v *Venue) error {
	v.ID = id
	if err := validateVenue(v); err != nil {
		return err
	}

	if err := service.repo.UpdateVenue(context, v); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Venue")
		}
		return err
	}

	service.logger.Info("venue_updated", slog.Int("venue_id", v.ID))
	return nil
}

// Delete removes the venue and, through the FK cascade, its shows.
// Deleting a missing id still reports success.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.DeleteVenue(context, id); err != nil {
		return err
	}

	service.logger.Warn("venue_deleted", slog.Int("venue_id", id))
	return nil
}

func validateVenue(v *Venue) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, v.Name).MaxLen(FieldName, v.Name, 200)
	validator.Required(FieldCity, v.City).MaxLen(FieldCity, v.City, 120)
	validator.Required(FieldState, v.State)

	if v.State != "" {
		validator.OneOf(FieldState, v.State, reference.StateCodes...)
	}

	validator.EachOneOf(FieldGenres, v.Genres, reference.GenreTags...)
	validator.Phone(FieldPhone, v.Phone)
	validator.URL(FieldImageLink, v.ImageLink)
	validator.URL(FieldFacebookLink, v.FacebookLink)
	validator.URL(FieldWebsiteLink, v.WebsiteLink)

	return validator.Err()
}

// groupByArea buckets area rows by exact (state, city) match, preserving the
// row order delivered by the store.
func groupByArea(rows []AreaRow) []Area {
	areas := []Area{}
	index := make(map[[2]string]int)

	for _, row := range rows {
		key := [2]string{row.State, row.City}
		position, exists := index[key]
		if !exists {
			position = len(areas)
			index[key] = position
			areas = append(areas, Area{City: row.City, State: row.State})
		}
		areas[position].Venues = append(areas[position].Venues, AreaVenue{
			ID:               row.ID,
			Name:             row.Name,
			NumUpcomingShows: row.NumUpcomingShows,
		})
	}

	return areas
}
