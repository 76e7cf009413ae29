// Copyright (c) 2026 Showtime. All rights reserved.

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtimehq/showtime/internal/platform/apperr"
	"github.com/showtimehq/showtime/internal/platform/dberr"
)

/*
TestWrap_Nil verifies that a nil error passes through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrap_NoRows verifies the pgx.ErrNoRows → NOT_FOUND mapping.
*/
func TestWrap_NoRows(t *testing.T) {
	err := dberr.Wrap(pgx.ErrNoRows, "get_venue")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestWrap_ForeignKeyViolation verifies that a dangling reference surfaces as
UNPROCESSABLE rather than a generic internal error. This is the terminal
outcome of creating a show against a venue or artist id that does not exist.
*/
func TestWrap_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}

	err := dberr.Wrap(pgErr, "create_show")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNPROCESSABLE", ae.Code)
	assert.Equal(t, 422, ae.HTTPStatus)
}

/*
TestWrap_Unknown verifies that unclassified errors collapse to INTERNAL_ERROR
with the cause preserved for logging.
*/
func TestWrap_Unknown(t *testing.T) {
	cause := errors.New("connection reset")

	err := dberr.Wrap(cause, "list_shows")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
	assert.ErrorIs(t, err, cause)
}
