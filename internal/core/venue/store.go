package venue

import "context"

type Repository interface {
	ListAreaRows(context context.Context) ([]AreaRow, error)
	SearchByName(context context.Context, term string) ([]SearchHit, error)
	GetVenue(context context.Context, id int) (*Venue, error)
	PastShows(context context.Context, venueID int) ([]ShowEntry, error)
	UpcomingShows(context context.Context, venueID int) ([]ShowEntry, error)
	CreateVenue(context context.Context, v *Venue) error
	UpdateVenue(context context.Context, v *Venue) error
	DeleteVenue(context context.Context, id int) error
}
