package show

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/showtimehq/showtime/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListShows returns every show joined with its venue and artist display
// attributes, ordered by start time.
func (repository *PostgresRepository) ListShows(context context.Context) ([]ListingRow, error) {
	query := `
		SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time
	`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_shows")
	}
	defer rows.Close()

	var listing []ListingRow
	for rows.Next() {
		var row ListingRow
		if err := rows.Scan(&row.VenueID, &row.VenueName, &row.ArtistID, &row.ArtistName, &row.ArtistImageLink, &row.StartTime); err != nil {
			return nil, dberr.Wrap(err, "scan_show_listing_row")
		}
		listing = append(listing, row)
	}

	return listing, dberr.Wrap(rows.Err(), "list_shows")
}

func (repository *PostgresRepository) CreateShow(context context.Context, s *Show) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_show")
	}
	defer transaction.Rollback(context)

	query := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err = transaction.QueryRow(context, query, s.VenueID, s.ArtistID, s.StartTime).Scan(&s.ID)
	if err != nil {
		return dberr.Wrap(err, "create_show")
	}

	return dberr.Wrap(transaction.Commit(context), "commit_create_show")
}

func (repository *PostgresRepository) VenueName(context context.Context, id int) (string, bool, error) {
	return repository.nameOf(context, `SELECT name FROM venues WHERE id = $1`, id, "venue_name")
}

func (repository *PostgresRepository) ArtistName(context context.Context, id int) (string, bool, error) {
	return repository.nameOf(context, `SELECT name FROM artists WHERE id = $1`, id, "artist_name")
}

// nameOf looks up a single display name. Absence is reported via the bool,
// not as an error, so callers can treat it as advisory.
func (repository *PostgresRepository) nameOf(context context.Context, query string, id int, action string) (string, bool, error) {
	var name string
	err := repository.db.QueryRow(context, query, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, dberr.Wrap(err, action)
	}
	return name, true, nil
}
