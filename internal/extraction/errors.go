// Package extraction talks to the external document-parsing service that
// turns an uploaded resume into raw entity categories.
package extraction

import "fmt"

// ConnectionErrorMessage is the message of every network-level failure.
const ConnectionErrorMessage = "Unable to connect to the server. Is the backend running?"

// APIError is a communication failure with the extraction service.
// Status is the HTTP status code, or 0 when the service could not be reached.
type APIError struct {
	Status  int
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("api error (status %d): %s: %v", e.Status, e.Message, e.Cause)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Unreachable reports whether the service could not be reached at all.
func (e *APIError) Unreachable() bool {
	return e.Status == 0
}
