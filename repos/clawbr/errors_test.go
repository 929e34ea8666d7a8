package clawbr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/alanwatts07/terrancedejour-site/pkg/response"
)

func TestErrorsMapToResponses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", xerrors.Errorf("tournament %q: %w", "x", ErrNotFound), http.StatusNotFound, "not_found"},
		{"api 404", &APIError{Status: http.StatusNotFound, Path: "/tournaments/x"}, http.StatusNotFound, "not_found"},
		{"api 502", xerrors.Errorf("stats: %w", &APIError{Status: http.StatusBadGateway, Path: "/stats"}), http.StatusBadGateway, "upstream_error"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, payload := response.MapError(c.err)
			assert.Equal(t, c.status, status)
			assert.Equal(t, c.code, payload.Error)
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	notFound := &APIError{Status: http.StatusNotFound, Path: "/debates/d1"}
	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.True(t, errors.Is(notFound, response.ErrNotFound))
	assert.True(t, errors.Is(ErrNotFound, response.ErrNotFound))

	failed := &APIError{Status: http.StatusInternalServerError, Path: "/stats"}
	assert.False(t, errors.Is(failed, ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, failed.StatusCode())
}
