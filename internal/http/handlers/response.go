// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response envelope used across all endpoints. Every
// response, success or failure, is wrapped in the same JSON shape so clients
// can branch on a single boolean:
//
//	HTTP/1.1 200 OK
//	{ "success": true, "count": 2, "data": [ ... ] }
//
//	HTTP/1.1 404 Not Found
//	{ "success": false, "message": "Product not found" }
//
// The optional "error" field carries the underlying failure detail and is
// attached only when the deployment runs in development mode; production
// responses never leak internals.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmart/go-product-backend/internal/http/middleware"
)

// SuccessResponse is the envelope returned by every successful endpoint.
// Count is present only on list responses; Message only where an operation
// has something to say beyond its payload (delete confirmation).
type SuccessResponse struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// ErrorResponse is the envelope returned by every failing endpoint.
// Error carries the raw failure detail and is only populated in
// development mode.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ok writes a success envelope with the given status and payload.
func ok(c *gin.Context, status int, data any) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// okList writes a success envelope for list endpoints, including the count.
func okList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Count: &count, Data: data})
}

// okMessage writes a success envelope with a confirmation message.
func okMessage(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: msg, Data: data})
}

// fail aborts the request with an error envelope and logs server-side errors.
//
// detail is included in the response only when it is non-empty; callers gate
// it on the development flag. Server errors (>=500) are logged with the
// request-scoped logger regardless.
func fail(c *gin.Context, status int, msg, detail string) {
	resp := ErrorResponse{Success: false, Message: msg, Error: detail}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Str("detail", detail).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) call Fail to return consistent error
// envelopes without depending on unexported helpers.
func Fail(c *gin.Context, status int, msg, detail string) { fail(c, status, msg, detail) }
