package show

import "context"

type Repository interface {
	ListShows(context context.Context) ([]ListingRow, error)
	CreateShow(context context.Context, s *Show) error
	// VenueName and ArtistName report the display name of a referenced record.
	// A missing record is (zero value, false, nil), not an error.
	VenueName(context context.Context, id int) (string, bool, error)
	ArtistName(context context.Context, id int) (string, bool, error)
}
