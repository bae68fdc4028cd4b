// Package services defines the business logic for the product catalog.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages and HTTP status codes is performed at the
// handler layer.
package services

import (
	"errors"
	"strings"
)

var (
	// ErrProductNotFound indicates that no product exists under the requested
	// identifier, or that it has already been deleted.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProductID is returned when a path identifier cannot be parsed
	// as a product ID at all. It is deliberately distinct from
	// ErrProductNotFound: a malformed identifier is a client input error, not
	// an absent record.
	ErrInvalidProductID = errors.New("invalid product id format")
)

// ValidationError reports every field constraint violated by a candidate
// payload. Messages are collected in field declaration order (name, price,
// quantity) so the rendered error is deterministic.
type ValidationError struct {
	Messages []string
}

// Error joins the per-field messages into a single comma-separated string.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// AsValidation returns the *ValidationError wrapped in err, or nil when err is
// not a validation failure.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
