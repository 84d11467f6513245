package extraction

import (
	"fmt"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/parsing"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
)

// UploadResult is the service envelope of one parsed upload together with
// the normalized record.
type UploadResult struct {
	Filename   string             `json:"filename"`
	FileType   string             `json:"file_type,omitempty"`
	TextLength int                `json:"text_length"`
	Text       string             `json:"-"`
	Record     types.ResumeRecord `json:"parsed_data"`
}

// Outcome decides whether a service response is a success. It is the only
// place that makes this decision.
//
// A non-2xx status fails with the coerced "detail" field, else "message",
// else a generic message naming the status. A 2xx status fails only when the
// payload says "success": false; an absent flag means success.
func Outcome(status int, payload types.EntityValue) error {
	if status < 200 || status > 299 {
		return &APIError{
			Status:  status,
			Message: failureMessage(status, payload),
		}
	}

	if success, ok := payload.Field("success"); ok {
		if b, isBool := success.Bool(); isBool && !b {
			return &APIError{
				Status:  status,
				Message: failureMessage(status, payload),
			}
		}
	}
	return nil
}

func failureMessage(status int, payload types.EntityValue) string {
	for _, key := range []string{"detail", "message"} {
		if v, ok := payload.Field(key); ok {
			if msg := v.Text(); msg != "" {
				return msg
			}
		}
	}
	return fmt.Sprintf("HTTP %d while uploading resume", status)
}

// resultFromPayload reads the envelope fields and normalizes data.entities.
// Missing or oddly shaped fields degrade to zero values.
func resultFromPayload(payload types.EntityValue) *UploadResult {
	result := &UploadResult{
		Filename:   stringField(payload, "filename"),
		FileType:   stringField(payload, "file_type"),
		TextLength: intField(payload, "text_length"),
	}
	if result.TextLength == 0 {
		result.TextLength = intField(payload, "length_chars")
	}

	var entities types.EntityValue
	if data, ok := payload.Field("data"); ok {
		result.Text = stringField(data, "text")
		entities, _ = data.Field("entities")
	}
	result.Record = parsing.Normalize(types.RawExtractionFrom(entities))
	return result
}

func stringField(v types.EntityValue, key string) string {
	f, ok := v.Field(key)
	if !ok {
		return ""
	}
	s, _ := f.Str()
	return s
}

func intField(v types.EntityValue, key string) int {
	f, ok := v.Field(key)
	if !ok {
		return 0
	}
	n, ok := f.Number()
	if !ok {
		return 0
	}
	i, err := n.Int64()
	if err != nil {
		return 0
	}
	return int(i)
}
