// Package session hands a parsed record from the upload step to later
// export requests.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
)

// DefaultTTL is how long a session survives without being read again.
const DefaultTTL = time.Hour

// ErrNotFound is returned for unknown, malformed or expired session IDs.
var ErrNotFound = errors.New("session not found")

// Session is one parsed upload.
type Session struct {
	ID         string             `json:"session_id"`
	Filename   string             `json:"filename"`
	FileType   string             `json:"file_type,omitempty"`
	TextLength int                `json:"text_length"`
	Record     types.ResumeRecord `json:"parsed_data"`
	CreatedAt  time.Time          `json:"created_at"`
}

// Store keeps sessions by ID.
type Store interface {
	// Put stores s, assigning a new ID when s.ID is empty, and returns the ID.
	Put(ctx context.Context, s *Session) (string, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// prepare fills in the ID and creation time of a session about to be stored.
func prepare(s *Session, now time.Time) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now.UTC()
	}
}

// validID reports whether id looks like an ID issued by prepare.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
