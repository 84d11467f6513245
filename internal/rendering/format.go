package rendering

import "strings"

// Format selects one of the export renderers.
type Format string

// Supported export formats.
const (
	FormatJSON  Format = "json"
	FormatText  Format = "text"
	FormatPrint Format = "print"
)

// DefaultBaseFileName is used when the caller supplies no base name.
const DefaultBaseFileName = "resume"

// Artifact is the transient output of one export. For FormatPrint, Content
// holds the renderable markup and FileName is empty.
type Artifact struct {
	Format   Format
	Content  []byte
	FileName string
	MIMEType string
}

// ParseFormat maps a user-supplied selector to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	case "print", "pdf", "html":
		return FormatPrint, nil
	default:
		return "", &FormatError{Format: s}
	}
}

// Formats lists every supported format in menu order.
func Formats() []Format {
	return []Format{FormatJSON, FormatText, FormatPrint}
}

// Extension returns the suggested file extension, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "txt"
	case FormatPrint:
		return "html"
	default:
		return ""
	}
}

// MIMEType returns the content type of artifacts in this format.
func (f Format) MIMEType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatPrint:
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// FileName derives the suggested file name for a base name.
func (f Format) FileName(baseFileName string) string {
	base := strings.TrimSpace(baseFileName)
	if base == "" {
		base = DefaultBaseFileName
	}
	return base + "." + f.Extension()
}
