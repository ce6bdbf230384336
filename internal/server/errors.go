package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/presidential-roast/internal/db"
	"github.com/jonathan/presidential-roast/internal/pipeline"
)

// ErrArchiveDisabled indicates the roast archive has no database behind it.
var ErrArchiveDisabled = errors.New("roast archive is not configured")

// ErrShareNotFound indicates a share token that is invalid or expired.
var ErrShareNotFound = errors.New("share link not found or expired")

// ErrContentUnavailable indicates content_url could not be fetched.
type ErrContentUnavailable struct {
	URL string
}

func (e *ErrContentUnavailable) Error() string {
	return "could not fetch content from " + e.URL
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *pipeline.ValidationError
	var contentErr *ErrContentUnavailable
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &contentErr):
		return http.StatusBadGateway
	case errors.Is(err, db.ErrNotFound), errors.Is(err, ErrShareNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrArchiveDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
