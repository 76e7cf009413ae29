package artist

import "time"

// Artist represents a performer who can be booked at venues.
//
// Genres is the list form; storage keeps it as one comma-delimited text
// column and the repository converts at that boundary.
type Artist struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// DefaultSeekingDescription is applied when a submitted description is blank.
const DefaultSeekingDescription = "I am currently searching for venues to play shows."

// ListItem is the minimal projection served by the artist index.
type ListItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SearchHit is one artist matched by a name search.
//
// NumShows counts ALL of the artist's shows, past and upcoming alike. Venue
// search counts upcoming shows only; the asymmetry is documented product
// behavior and the differing field name keeps it visible.
type SearchHit struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	NumShows int    `json:"num_shows"`
}

// SearchResults is the response structure for an artist name search.
type SearchResults struct {
	Count int         `json:"count"`
	Data  []SearchHit `json:"data"`
}

// ShowEntry is one show on an artist detail page, carrying the hosting venue.
type ShowEntry struct {
	ShowID         int       `json:"show_id"`
	StartTime      time.Time `json:"start_time"`
	VenueID        int       `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
}

// Detail is the artist page structure: the record plus its show history
// split into past and upcoming sets, each with its own count.
type Detail struct {
	Artist
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

const (
	FieldName         = "name"
	FieldCity         = "city"
	FieldState        = "state"
	FieldPhone        = "phone"
	FieldGenres       = "genres"
	FieldImageLink    = "image_link"
	FieldFacebookLink = "facebook_link"
	FieldWebsiteLink  = "website_link"
)
