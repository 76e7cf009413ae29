package artist

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/showtimehq/showtime/internal/platform/dberr"
	"github.com/showtimehq/showtime/pkg/genre"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListNames returns the minimal id/name projection for the artist index.
func (repository *PostgresRepository) ListNames(context context.Context) ([]ListItem, error) {
	rows, err := repository.db.Query(context, `SELECT id, name FROM artists ORDER BY name`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	var items []ListItem
	for rows.Next() {
		var item ListItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_list_item")
		}
		items = append(items, item)
	}

	return items, dberr.Wrap(rows.Err(), "list_artists")
}

// SearchByName matches artists by case-insensitive substring. The per-hit
// count deliberately covers ALL shows, not just upcoming ones — the join
// carries no start_time filter.
func (repository *PostgresRepository) SearchByName(context context.Context, term string) ([]SearchHit, error) {
	query := `
		SELECT a.id, a.name, count(s.id) AS num_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $1
		GROUP BY a.id
		ORDER BY a.name
	`

	rows, err := repository.db.Query(context, query, "%"+term+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "search_artists")
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var hit SearchHit
		if err := rows.Scan(&hit.ID, &hit.Name, &hit.NumShows); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_search_hit")
		}
		hits = append(hits, hit)
	}

	return hits, dberr.Wrap(rows.Err(), "search_artists")
}

func (repository *PostgresRepository) GetArtist(context context.Context, id int) (*Artist, error) {
	query := `
		SELECT id, name, city, state, phone, genres,
		       image_link, facebook_link, website_link,
		       seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`

	a := &Artist{}
	var genresField string
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genresField,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink,
		&a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}

	a.Genres = genre.ToList(genresField)
	return a, nil
}

func (repository *PostgresRepository) PastShows(context context.Context, artistID int) ([]ShowEntry, error) {
	return repository.showsFor(context, artistID, "<", "past_shows_for_artist")
}

func (repository *PostgresRepository) UpcomingShows(context context.Context, artistID int) ([]ShowEntry, error) {
	return repository.showsFor(context, artistID, ">", "upcoming_shows_for_artist")
}

// showsFor selects the artist's shows on one side of now(). The comparator is
// strict in both directions: a show starting exactly now is in neither set.
func (repository *PostgresRepository) showsFor(context context.Context, artistID int, comparator, action string) ([]ShowEntry, error) {
	query := `
		SELECT s.id, s.start_time, v.id, v.name, v.image_link
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1 AND s.start_time ` + comparator + ` now()
		ORDER BY s.start_time
	`

	rows, err := repository.db.Query(context, query, artistID)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var entries []ShowEntry
	for rows.Next() {
		var entry ShowEntry
		if err := rows.Scan(&entry.ShowID, &entry.StartTime, &entry.VenueID, &entry.VenueName, &entry.VenueImageLink); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		entries = append(entries, entry)
	}

	return entries, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) CreateArtist(context context.Context, a *Artist) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_artist")
	}
	defer transaction.Rollback(context)

	query := `
		INSERT INTO artists (name, city, state, phone, genres,
		                     image_link, facebook_link, website_link,
		                     seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err = transaction.QueryRow(context, query,
		a.Name, a.City, a.State, a.Phone, genre.ToField(a.Genres),
		a.ImageLink, a.FacebookLink, a.WebsiteLink,
		a.SeekingVenue, a.SeekingDescription,
	).Scan(&a.ID)
	if err != nil {
		return dberr.Wrap(err, "create_artist")
	}

	return dberr.Wrap(transaction.Commit(context), "commit_create_artist")
}

func (repository *PostgresRepository) UpdateArtist(context context.Context, a *Artist) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_artist")
	}
	defer transaction.Rollback(context)

	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, genres = $6,
		    image_link = $7, facebook_link = $8, website_link = $9,
		    seeking_venue = $10, seeking_description = $11
		WHERE id = $1
	`

	cmd, err := transaction.Exec(context, query,
		a.ID, a.Name, a.City, a.State, a.Phone, genre.ToField(a.Genres),
		a.ImageLink, a.FacebookLink, a.WebsiteLink,
		a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return dberr.Wrap(err, "update_artist")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(transaction.Commit(context), "commit_update_artist")
}
