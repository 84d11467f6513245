package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{" txt ", FormatText},
		{"print", FormatPrint},
		{"pdf", FormatPrint},
		{"html", FormatPrint},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ParseFormat("docx")
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "docx", formatErr.Format)
	assert.Contains(t, err.Error(), `"docx"`)
}

func TestFormat_FileName(t *testing.T) {
	assert.Equal(t, "resume.json", FormatJSON.FileName(""))
	assert.Equal(t, "resume.txt", FormatText.FileName("   "))
	assert.Equal(t, "cv.txt", FormatText.FileName("cv"))
	assert.Equal(t, "resume.html", FormatPrint.FileName(""))
}

func TestFormat_MIMEType(t *testing.T) {
	assert.Equal(t, "application/json", FormatJSON.MIMEType())
	assert.Equal(t, "text/plain; charset=utf-8", FormatText.MIMEType())
	assert.Equal(t, "text/html; charset=utf-8", FormatPrint.MIMEType())
	assert.Equal(t, "application/octet-stream", Format("yaml").MIMEType())
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []Format{FormatJSON, FormatText, FormatPrint}, Formats())
}
