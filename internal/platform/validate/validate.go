// Copyright (c) 2026 Showtime. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid
// data, and that nothing is persisted while any rule fails.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/showtimehq/showtime/internal/platform/apperr"
)

var (
	// phoneRegex accepts digits with optional separators, e.g. 123-123-1234.
	phoneRegex = regexp.MustCompile(`^[0-9+][0-9\-. ()]*$`)
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// EachOneOf applies the OneOf rule to every element of a multi-valued field,
// such as the submitted genre tags.
func (v *Validator) EachOneOf(field string, values []string, allowed ...string) *Validator {
	for _, value := range values {
		matched := false
		for _, a := range allowed {
			if value == a {
				matched = true
				break
			}
		}
		if !matched {
			v.add(field, fmt.Sprintf("%q is not a valid choice", value))
		}
	}
	return v
}

// URL fails if a non-empty value is not an absolute http(s) URL.
// Empty values pass; combine with Required for mandatory links.
func (v *Validator) URL(field, value string) *Validator {
	if value == "" {
		return v
	}
	parsed, err := url.Parse(value)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		v.add(field, "Must be a valid URL")
	}
	return v
}

// Phone fails if a non-empty value is not a plausible phone number.
func (v *Validator) Phone(field, value string) *Validator {
	if value == "" {
		return v
	}
	if !phoneRegex.MatchString(value) {
		v.add(field, "Must be a valid phone number")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("start_time", start.IsZero(), "Must be a valid timestamp")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
