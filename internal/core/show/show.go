package show

import "time"

// Show is one booking of an artist at a venue.
type Show struct {
	ID        int       `json:"id"`
	VenueID   int       `json:"venue_id"`
	ArtistID  int       `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// Timing classifies a show relative to a reference instant.
type Timing string

const (
	TimingPast     Timing = "past"
	TimingUpcoming Timing = "upcoming"
	// TimingCurrent covers a show starting at exactly the reference instant;
	// both past and upcoming classification are strict.
	TimingCurrent Timing = "current"
)

// Classify places a start time on one side of now. The comparisons are strict
// in both directions, so an exact match is neither past nor upcoming.
func Classify(start, now time.Time) Timing {
	switch {
	case start.Before(now):
		return TimingPast
	case start.After(now):
		return TimingUpcoming
	default:
		return TimingCurrent
	}
}

// ListingRow is one entry on the show listing, denormalized with the venue and
// artist display attributes.
type ListingRow struct {
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
	Timing          Timing    `json:"timing"`
}

const (
	FieldVenueID   = "venue_id"
	FieldArtistID  = "artist_id"
	FieldStartTime = "start_time"
)
