package artist

import "context"

type Repository interface {
	ListNames(context context.Context) ([]ListItem, error)
	SearchByName(context context.Context, term string) ([]SearchHit, error)
	GetArtist(context context.Context, id int) (*Artist, error)
	PastShows(context context.Context, artistID int) ([]ShowEntry, error)
	UpcomingShows(context context.Context, artistID int) ([]ShowEntry, error)
	CreateArtist(context context.Context, a *Artist) error
	UpdateArtist(context context.Context, a *Artist) error
}
