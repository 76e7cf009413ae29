// Copyright (c) 2026 Showtime. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the
form-decoding patterns used by the create/edit/search submission handlers,
ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/showtimehq/showtime/internal/platform/apperr"
)

/*
IntParam retrieves a named URL parameter and parses it as an integer id.

Returns:
  - int: The parsed id
  - error: apperr.ValidationError if the parameter is not a valid integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Invalid " + name)
	}
	return id, nil
}

/*
FormValue returns a single submitted form field, parsing the body on first use.
*/
func FormValue(request *http.Request, name string) string {
	return request.FormValue(name)
}

/*
FormValues returns every submitted value for a multi-valued form field,
such as the genres checkbox group.
*/
func FormValues(request *http.Request, name string) []string {
	_ = request.ParseForm()
	return request.PostForm[name]
}

/*
FormBool interprets a submitted checkbox value.

WTForms-style checkboxes post "y" when ticked; HTML checkboxes post "on";
API clients post "true". All are accepted.
*/
func FormBool(request *http.Request, name string) bool {
	switch request.FormValue(name) {
	case "y", "on", "true", "1":
		return true
	}
	return false
}

/*
FormInt parses a submitted form field as an integer.

Returns:
  - int: The parsed value
  - error: apperr.ValidationError if the field is missing or not numeric
*/
func FormInt(request *http.Request, name string) (int, error) {
	raw := request.FormValue(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Invalid "+name, apperr.FieldError{
			Field:   name,
			Message: "Must be a number",
		})
	}
	return value, nil
}
