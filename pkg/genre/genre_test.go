// Copyright (c) 2026 Showtime. All rights reserved.

package genre_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/showtimehq/showtime/pkg/genre"
)

/*
TestToList covers parsing of the stored delimited field.
*/
func TestToList(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{"two_tags", "Jazz, Classical", []string{"Jazz", "Classical"}},
		{"no_space_after_comma", "Jazz,Classical", []string{"Jazz", "Classical"}},
		{"single_tag", "Rock n Roll", []string{"Rock n Roll"}},
		{"empty_field", "", []string{}},
		{"stray_delimiters", ",Jazz,, Folk,", []string{"Jazz", "Folk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, genre.ToList(tt.field))
		})
	}
}

/*
TestRoundTrip verifies that a submitted genre list survives the
store-then-parse cycle unchanged.
*/
func TestRoundTrip(t *testing.T) {
	submitted := []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"}

	stored := genre.ToField(submitted)
	assert.Equal(t, "Jazz, Reggae, Swing, Classical, Folk", stored)

	assert.Equal(t, submitted, genre.ToList(stored))
}

/*
TestToField_Empty verifies the empty list stores as an empty string,
never as NULL-ish placeholder text.
*/
func TestToField_Empty(t *testing.T) {
	assert.Equal(t, "", genre.ToField(nil))
	assert.Equal(t, "", genre.ToField([]string{}))
}
