package extraction

import (
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
)

// MaxUploadSize is the largest file the service accepts.
const MaxUploadSize = 10 << 20

// AllowedExtensions lists the accepted resume file extensions.
var AllowedExtensions = []string{".pdf", ".docx", ".txt"}

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain; charset=utf-8"
)

// Preflight checks a file before it is sent and returns the content type to
// declare for it. Rejections are *APIError values with the status the
// service itself would answer with.
func Preflight(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(AllowedExtensions, ext) {
		return "", &APIError{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Unsupported file type: %s", ext),
		}
	}

	if len(data) > MaxUploadSize {
		return "", &APIError{
			Status: http.StatusRequestEntityTooLarge,
			Message: fmt.Sprintf("File too large (%.1f MB). Max is %d MB.",
				float64(len(data))/(1<<20), MaxUploadSize>>20),
		}
	}

	if len(data) == 0 {
		return "", &APIError{
			Status:  http.StatusBadRequest,
			Message: "File is empty",
		}
	}

	switch ext {
	case ".pdf":
		if !filetype.Is(data, "pdf") {
			return "", mismatch(filename, "PDF")
		}
		return mimePDF, nil
	case ".docx":
		if !filetype.Is(data, "docx") && !filetype.Is(data, "zip") {
			return "", mismatch(filename, "Word document")
		}
		return mimeDOCX, nil
	default:
		if kind, _ := filetype.Match(data); kind.MIME.Value != "" {
			return "", &APIError{
				Status:  http.StatusBadRequest,
				Message: fmt.Sprintf("%s looks like %s, not plain text", filename, kind.MIME.Value),
			}
		}
		return mimeText, nil
	}
}

func mismatch(filename, want string) error {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("%s is not a valid %s", filename, want),
	}
}
