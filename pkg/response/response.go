// Package response keeps JSON error shapes uniform across handlers.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrNotFound is the root of every not-found error a handler may see.
var ErrNotFound = errors.New("not found")

// StatusError is an upstream failure that carries the HTTP status it was answered with.
type StatusError interface {
	error
	StatusCode() int
}

// ErrorPayload is the error envelope every JSON endpoint returns.
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MapError converts an error into an HTTP status and payload.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	var statusErr StatusError
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found"}
	case errors.As(err, &statusErr):
		if statusErr.StatusCode() == http.StatusNotFound {
			return http.StatusNotFound, ErrorPayload{Error: "not_found"}
		}
		return http.StatusBadGateway, ErrorPayload{Error: "upstream_error", Message: statusErr.Error()}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error", Message: "something went wrong"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, payload)
}

func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
