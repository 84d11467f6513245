// Package rendering exports a ResumeRecord as JSON, plain text, or a print-ready HTML document.
package rendering

import (
	"errors"
	"fmt"
)

// ErrCapabilityUnavailable is matched by every CapabilityError.
var ErrCapabilityUnavailable = errors.New("display surface unavailable")

// CapabilityError reports that the print path could not acquire or use a
// display surface. The caller may ask the user to grant the capability
// (for example, allow pop-ups) and retry the same export.
type CapabilityError struct {
	Message string
	Cause   error
}

func (e *CapabilityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("capability error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("capability error: %s", e.Message)
}

func (e *CapabilityError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrCapabilityUnavailable) hold for any CapabilityError.
func (e *CapabilityError) Is(target error) bool {
	return target == ErrCapabilityUnavailable
}

// TemplateError represents an error parsing or executing the print template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// FormatError reports an unknown export format selector.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %q (want json, text or print)", e.Format)
}
