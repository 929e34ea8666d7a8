package clawbr

import (
	"fmt"
	"net/http"

	"golang.org/x/xerrors"

	"github.com/alanwatts07/terrancedejour-site/pkg/response"
)

var ErrNotFound = xerrors.Errorf("clawbr: %w", response.ErrNotFound)

// APIError is a non-2xx answer from the platform API.
type APIError struct {
	Status int
	Path   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Clawbr API error: %d %s", e.Status, e.Path)
}

func (e *APIError) StatusCode() int {
	return e.Status
}

// Is lets a 404 match ErrNotFound.
func (e *APIError) Is(target error) bool {
	if e.Status != http.StatusNotFound {
		return false
	}
	return target == ErrNotFound || target == response.ErrNotFound
}
