package rendering

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/schemas"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
)

// RenderJSON encodes the full record, raw entities included, with two-space indentation.
func RenderJSON(record types.ResumeRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return nil, &RenderError{
			Message: "failed to encode resume record",
			Cause:   err,
		}
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DecodeJSON parses a structured export back into a record. The document is
// checked against the resume record schema first, so a successful decode
// always yields non-nil sections.
func DecodeJSON(data []byte) (types.ResumeRecord, error) {
	if err := schemas.ValidateResumeRecord(data); err != nil {
		return types.ResumeRecord{}, fmt.Errorf("invalid structured resume: %w", err)
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return types.ResumeRecord{}, fmt.Errorf("failed to decode structured resume: %w", err)
	}
	return record, nil
}
