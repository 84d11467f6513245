package extraction

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	samplePDF  = []byte("%PDF-1.7\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	sampleText = []byte("Sarah Bennett\nSenior Engineer\nSkills: Go, Rust\n")
	samplePNG  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
)

func TestPreflight_Accepts(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		wantMIME string
	}{
		{"pdf", "cv.pdf", samplePDF, mimePDF},
		{"upper-case extension", "CV.PDF", samplePDF, mimePDF},
		{"text", "cv.txt", sampleText, mimeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, err := Preflight(tt.filename, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, mime)
		})
	}
}

func TestPreflight_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		data       []byte
		wantStatus int
		wantMsg    string
	}{
		{"unsupported extension", "cv.png", samplePNG, http.StatusBadRequest, "Unsupported file type: .png"},
		{"no extension", "resume", sampleText, http.StatusBadRequest, "Unsupported file type: "},
		{"empty", "cv.txt", nil, http.StatusBadRequest, "File is empty"},
		{"too large", "cv.txt", bytes.Repeat([]byte("a"), MaxUploadSize+1), http.StatusRequestEntityTooLarge, "Max is 10 MB"},
		{"pdf with text content", "cv.pdf", sampleText, http.StatusBadRequest, "not a valid PDF"},
		{"docx with text content", "cv.docx", sampleText, http.StatusBadRequest, "not a valid Word document"},
		{"binary disguised as text", "cv.txt", samplePNG, http.StatusBadRequest, "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Preflight(tt.filename, tt.data)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Contains(t, apiErr.Message, tt.wantMsg)
		})
	}
}

func TestPreflight_SizeBoundary(t *testing.T) {
	_, err := Preflight("cv.txt", bytes.Repeat([]byte("a"), MaxUploadSize))
	assert.NoError(t, err)
}
