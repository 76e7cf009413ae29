// Copyright (c) 2026 Showtime. All rights reserved.

// Package reference holds the fixed enumerations backing the venue, artist,
// and show forms: the valid genre tags and US state codes.
//
// The slices are exposed for form-definition payloads; membership checks go
// through [IsGenre] and [IsState].
package reference

// GenreTags is the closed set of valid genre choices.
var GenreTags = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Swing",
	"Other",
}

// StateCodes is the closed set of valid US state and territory codes.
var StateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// IsGenre reports whether tag is a valid genre choice.
func IsGenre(tag string) bool {
	return contains(GenreTags, tag)
}

// IsState reports whether code is a valid state code.
func IsState(code string) bool {
	return contains(StateCodes, code)
}

// FormOptions is the enumeration block embedded in every form-definition
// payload served by the GET create/edit endpoints.
type FormOptions struct {
	Genres []string `json:"genres"`
	States []string `json:"states"`
}

// Options returns the enumerations for form rendering.
func Options() FormOptions {
	return FormOptions{Genres: GenreTags, States: StateCodes}
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
