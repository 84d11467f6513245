package server

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/rendering"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/session"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
)

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status            string `json:"status"`
	ExtractionService bool   `json:"extraction_service"`
}

// UploadResponse represents the response for /upload
type UploadResponse struct {
	SessionID  string             `json:"session_id"`
	Success    bool               `json:"success"`
	Filename   string             `json:"filename"`
	FileType   string             `json:"file_type,omitempty"`
	TextLength int                `json:"text_length"`
	ParsedData types.ResumeRecord `json:"parsed_data"`
}

// handleUpload forwards a multipart "file" to the extraction service and
// keeps the normalized record in a new session.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "File too large. Max is 10 MB.")
			return
		}
		s.fail(w, r, &ErrValidation{Field: "file", Message: "a multipart file field is required"})
		return
	}
	defer func() { _ = file.Close() }()

	result, err := s.client.Upload(r.Context(), header.Filename, file)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	sess := &session.Session{
		Filename:   result.Filename,
		FileType:   result.FileType,
		TextLength: result.TextLength,
		Record:     result.Record,
	}
	id, err := s.store.Put(r.Context(), sess)
	if err != nil {
		s.fail(w, r, fmt.Errorf("failed to store session: %w", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, UploadResponse{
		SessionID:  id,
		Success:    true,
		Filename:   result.Filename,
		FileType:   result.FileType,
		TextLength: result.TextLength,
		ParsedData: result.Record,
	})
}

// handleGetSession returns a stored session
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

// handleDeleteSession discards a stored session
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleExport renders a stored record. JSON and text are sent as
// attachments; the print format is sent inline so the browser opens its
// print dialog.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(rendering.FormatJSON)
	}
	format, err := rendering.ParseFormat(formatParam)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	baseName := r.URL.Query().Get("name")
	if baseName == "" {
		baseName = strings.TrimSuffix(sess.Filename, filepath.Ext(sess.Filename))
	}

	surface := &responseSurface{w: w}
	exporter := rendering.NewExporter(rendering.SurfaceOpenerFunc(surface.open))

	artifact, err := exporter.Export(r.Context(), sess.Record, format, baseName)
	if err != nil {
		if surface.written {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("export failed after response started")
			return
		}
		s.fail(w, r, err)
		return
	}
	if format == rendering.FormatPrint {
		return
	}

	w.Header().Set("Content-Type", artifact.MIMEType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": artifact.FileName,
	}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Content)
}
