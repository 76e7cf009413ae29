package show

import (
	"context"
	"log/slog"
	"time"

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

// List returns every show with its timing classification relative to the
// query-time clock.
func (service *Service) List(context context.Context) ([]ListingRow, error) {
	rows, err := service.repo.ListShows(context)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range rows {
		rows[i].Timing = Classify(rows[i].StartTime, now)
	}

	if rows == nil {
		rows = []ListingRow{}
	}
	return rows, nil
}

// Create validates and persists a new show, returning the booked artist's
// name for the success notice. Missing venue or artist references are logged
// as warnings but do not block the attempt; the storage layer's referential
// constraints are the final authority and reject the insert.
func (service *Service) Create(context context.Context, s *Show) (artistName string, err error) {
	if err := validateShow(s); err != nil {
		return "", err
	}

	if _, found, err := service.repo.VenueName(context, s.VenueID); err == nil && !found {
		service.logger.Warn("unknown_venue", slog.Int("venue_id", s.VenueID))
	}

	name, found, err := service.repo.ArtistName(context, s.ArtistID)
	if err == nil && !found {
		service.logger.Warn("unknown_artist", slog.Int("artist_id", s.ArtistID))
	}

	if err := service.repo.CreateShow(context, s); err != nil {
		return "", err
	}

	service.logger.Info("show_created",
		slog.Int("show_id", s.ID),
		slog.Int("venue_id", s.VenueID),
		slog.Int("artist_id", s.ArtistID),
	)
	return name, nil
}

func validateShow(s *Show) error {
	validator := &validate.Validator{}
	validator.Custom(FieldVenueID, s.VenueID <= 0, "Must be a positive integer")
	validator.Custom(FieldArtistID, s.ArtistID <= 0, "Must be a positive integer")
	validator.Custom(FieldStartTime, s.StartTime.IsZero(), "Must be a valid timestamp")
	return validator.Err()
}
