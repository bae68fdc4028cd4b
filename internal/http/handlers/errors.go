// Package handlers – error classification.
//
// This file maps every failure surfaced by the service layer onto exactly one
// of four outcomes:
//
//   - validation failure       → 400, joined per-field messages
//   - malformed identifier     → 400, "Invalid product ID format"
//   - missing record           → 404, "Product not found"
//   - anything else (storage)  → 500, "Server Error"
//
// The mapping is total: an error that matches none of the known kinds is a
// storage fault, so no failure ever reaches a client unclassified.
package handlers

import (
	"errors"
	"net/http"

	"github.com/openmart/go-product-backend/internal/services"
)

// Fixed client-facing messages for the non-validation failure kinds.
const (
	MsgInvalidID   = "Invalid product ID format"
	MsgNotFound    = "Product not found"
	MsgServerError = "Server Error"
	MsgBadBody     = "Invalid request body"
)

// classify resolves err to an HTTP status and client-facing message.
// Validation failures render their collected field messages; the other kinds
// use fixed messages.
func classify(err error) (status int, msg string) {
	if ve := services.AsValidation(err); ve != nil {
		return http.StatusBadRequest, ve.Error()
	}
	switch {
	case errors.Is(err, services.ErrInvalidProductID):
		return http.StatusBadRequest, MsgInvalidID
	case errors.Is(err, services.ErrProductNotFound):
		return http.StatusNotFound, MsgNotFound
	default:
		return http.StatusInternalServerError, MsgServerError
	}
}
