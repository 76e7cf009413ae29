package venue

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

// ListAreaRows returns every venue annotated with its count of upcoming
// shows. Rows arrive ordered by (state, city) so the service can bucket them
// into areas in a single pass.
func (repository *PostgresRepository) ListAreaRows(context context.Context) ([]AreaRow, error) {
	query := `
		SELECT v.id, v.name, v.city, v.state, count(s.id) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > now()
		GROUP BY v.id
		ORDER BY v.state, v.city, v.name
	`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_venue_areas")
	}
	defer rows.Close()

	var result []AreaRow
	for rows.Next() {
		var row AreaRow
		if err := rows.Scan(&row.ID, &row.Name, &row.City, &row.State, &row.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_area_row")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "list_venue_areas")
}

// SearchByName matches venues by case-insensitive substring. An empty term
// is a substring of every name and therefore matches all rows.
func (repository *PostgresRepository) SearchByName(context context.Context, term string) ([]SearchHit, error) {
	query := `
		SELECT v.id, v.name, count(s.id) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > now()
		WHERE v.name ILIKE $1
		GROUP BY v.id
		ORDER BY v.name
	`

	rows, err := repository.db.Query(context, query, "%"+term+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "search_venues")
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var hit SearchHit
		if err := rows.Scan(&hit.ID, &hit.Name, &hit.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_search_hit")
		}
		hits = append(hits, hit)
	}

	return hits, dberr.Wrap(rows.Err(), "search_venues")
}

func (repository *PostgresRepository) GetVenue(context context.Context, id int) (*Venue, error) {
	query := `
		SELECT id, name, city, state, address, phone, genres,
		       image_link, facebook_link, website_link,
		       seeking_talent, seeking_description
		FROM venues
		WHERE id = $1
	`

	v := &Venue{}
	var genresField string
	err := repository.db.QueryRow(context, query, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genresField,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink,
		&v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_venue")
	}

	v.Genres = genre.ToList(genresField)
	return v, nil
}

func (repository *PostgresRepository) PastShows(context context.Context, venueID int) ([]ShowEntry, error) {
	return repository.showsFor(context, venueID, "<", "past_shows_for_venue")
}

func (repository *PostgresRepository) UpcomingShows(context context.Context, venueID int) ([]ShowEntry, error) {
	return repository.showsFor(context, venueID, ">", "upcoming_shows_for_venue")
}

// showsFor selects the venue's shows on one side of now(). The comparator is
// strict in both directions: a show starting exactly now is in neither set.
func (repository *PostgresRepository) showsFor(context context.Context, venueID int, comparator, action string) ([]ShowEntry, error) {
	query := `
		SELECT s.id, s.start_time, a.id, a.name, a.image_link
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1 AND s.start_time ` + comparator + ` now()
		ORDER BY s.start_time
	`

	rows, err := repository.db.Query(context, query, venueID)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var entries []ShowEntry
	for rows.Next() {
		var entry ShowEntry
		if err := rows.Scan(&entry.ShowID, &entry.StartTime, &entry.ArtistID, &entry.ArtistName, &entry.ArtistImageLink); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		entries = append(entries, entry)
	}

	return entries, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) CreateVenue(context context.Context, v *Venue) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_venue")
	}
	defer transaction.Rollback(context)

	query := `
		INSERT INTO venues (name, city, state, address, phone, genres,
		                    image_link, facebook_link, website_link,
		                    seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err = transaction.QueryRow(context, query,
		v.Name, v.City, v.State, v.Address, v.Phone, genre.ToField(v.Genres),
		v.ImageLink, v.FacebookLink, v.WebsiteLink,
		v.SeekingTalent, v.SeekingDescription,
	).Scan(&v.ID)
	if err != nil {
		return dberr.Wrap(err, "create_venue")
	}

	return dberr.Wrap(transaction.Commit(context), "commit_create_venue")
}

func (repository *PostgresRepository) UpdateVenue(context context.Context, v *Venue) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_venue")
	}
	defer transaction.Rollback(context)

	query := `
		UPDATE venues
		SET name = $2, city = $3, state = $4, address = $5, phone = $6,
		    genres = $7, image_link = $8, facebook_link = $9,
		    website_link = $10, seeking_talent = $11, seeking_description = $12
		WHERE id = $1
	`

	cmd, err := transaction.Exec(context, query,
		v.ID, v.Name, v.City, v.State, v.Address, v.Phone,
		genre.ToField(v.Genres), v.ImageLink, v.FacebookLink,
		v.WebsiteLink, v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return dberr.Wrap(err, "update_venue")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(transaction.Commit(context), "commit_update_venue")
}

// DeleteVenue removes the venue; the shows FK cascade removes its bookings.
// Deleting an id that does not exist is a silent no-op.
func (repository *PostgresRepository) DeleteVenue(context context.Context, id int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_venue")
	}
	defer transaction.Rollback(context)

	if _, err := transaction.Exec(context, `DELETE FROM venues WHERE id = $1`, id); err != nil {
		return dberr.Wrap(err, "delete_venue")
	}

	return dberr.Wrap(transaction.Commit(context), "commit_delete_venue")
}
