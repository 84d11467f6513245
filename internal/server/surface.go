package server

import (
	"context"
	"net/http"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/rendering"
)

// responseSurface displays print markup by writing it as the HTTP response.
// The browser that receives it is the window that prints and closes itself.
type responseSurface struct {
	w       http.ResponseWriter
	written bool
}

func (s *responseSurface) open(context.Context) (rendering.Surface, error) {
	return s, nil
}

func (s *responseSurface) Display(_ context.Context, markup string) error {
	s.w.Header().Set("Content-Type", rendering.FormatPrint.MIMEType())
	s.w.Header().Set("Cache-Control", "no-store")
	s.w.WriteHeader(http.StatusOK)
	s.written = true
	_, err := s.w.Write([]byte(markup))
	return err
}
