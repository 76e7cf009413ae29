// Copyright (c) 2026 Showtime. All rights reserved.

// Package genre is the single conversion boundary between the comma-delimited
// genres storage format and the list form used everywhere else.
//
// # Overview
//
// Genre tags are persisted as one delimited text column, not a normalized
// join table. No other package may split or join that column directly; all
// conversion flows through [ToList] and [ToField].
package genre

import "strings"

// separator is the on-disk delimiter between genre tags.
const separator = ", "

// ToList parses the stored delimited field back into a list of tags.
//
// Whitespace around tags is trimmed and empty segments are dropped, so an
// empty stored field yields an empty list.
func ToList(field string) []string {
	if strings.TrimSpace(field) == "" {
		return []string{}
	}

	parts := strings.Split(field, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ToField joins a list of tags into the delimited storage form.
func ToField(tags []string) string {
	return strings.Join(tags, separator)
}
