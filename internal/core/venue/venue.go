package venue

import "time"

// Venue represents a place that hosts performances.
//
// Genres is the list form; storage keeps it as one comma-delimited text
// column and the repository converts at that boundary.
type Venue struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// DefaultSeekingDescription is applied when a submitted description is blank.
const DefaultSeekingDescription = "We are currently searching for local artists to play shows."

// AreaRow is one venue as returned by the area listing query: the venue
// identity plus its count of upcoming shows.
type AreaRow struct {
	ID               int
	Name             string
	City             string
	State            string
	NumUpcomingShows int
}

// AreaVenue is a venue entry inside an [Area] bucket.
type AreaVenue struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues of one (state, city) pair for the listing page.
type Area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []AreaVenue `json:"venues"`
}

// SearchHit is one venue matched by a name search. The per-hit count covers
// upcoming shows only.
type SearchHit struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResults is the response structure for a venue name search.
type SearchResults struct {
	Count int         `json:"count"`
	Data  []SearchHit `json:"data"`
}

// ShowEntry is one show on a venue detail page, carrying the booked artist.
type ShowEntry struct {
	ShowID          int       `json:"show_id"`
	StartTime       time.Time `json:"start_time"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
}

// Detail is the venue page structure: the record plus its show history split
// into past and upcoming sets, each with its own count.
type Detail struct {
	Venue
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

const (
	FieldName         = "name"
	FieldCity         = "city"
	FieldState        = "state"
	FieldAddress      = "address"
	FieldPhone        = "phone"
	FieldGenres       = "genres"
	FieldImageLink    = "image_link"
	FieldFacebookLink = "facebook_link"
	FieldWebsiteLink  = "website_link"
)
