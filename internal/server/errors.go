// Package server provides the HTTP API for uploading resumes and exporting
// the parsed records.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/extraction"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/rendering"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		apiErr        *extraction.APIError
		formatErr     *rendering.FormatError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &formatErr):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &apiErr):
		// The extraction service's client errors are the caller's fault;
		// anything else is a failure of the upstream.
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return apiErr.Status
		}
		return http.StatusBadGateway
	case errors.Is(err, rendering.ErrCapabilityUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage is the client-facing text for err. Upstream messages are
// passed through; unexpected errors are not leaked.
func errorMessage(err error) string {
	var apiErr *extraction.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
