package rendering

import (
	"context"
	"errors"
	"testing"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/parsing"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	displayed  []string
	displayErr error
}

func (s *fakeSurface) Display(_ context.Context, markup string) error {
	s.displayed = append(s.displayed, markup)
	return s.displayErr
}

func openerFor(surface Surface, err error) SurfaceOpener {
	return SurfaceOpenerFunc(func(context.Context) (Surface, error) {
		if err != nil {
			return nil, err
		}
		return surface, nil
	})
}

func sampleRecord(t *testing.T) types.ResumeRecord {
	t.Helper()
	return parsing.Normalize(decodeRaw(t, `{
		"Name": [{"text": "Sarah Bennett"}],
		"Skill": ["Go", "Rust"],
		"Language": ["English"]
	}`))
}

func TestExport_JSON(t *testing.T) {
	record := sampleRecord(t)

	artifact, err := NewExporter(nil).Export(context.Background(), record, FormatJSON, "")
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, artifact.Format)
	assert.Equal(t, "resume.json", artifact.FileName)
	assert.Equal(t, "application/json", artifact.MIMEType)

	decoded, err := DecodeJSON(artifact.Content)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestExport_Text(t *testing.T) {
	artifact, err := NewExporter(nil).Export(context.Background(), sampleRecord(t), FormatText, "sarah")
	require.NoError(t, err)

	assert.Equal(t, "sarah.txt", artifact.FileName)
	assert.Equal(t, "Sarah Bennett's Resume\n\nSKILLS:\nGo, Rust\n\nLANGUAGES:\n1. English\n", string(artifact.Content))
}

func TestExport_DoesNotModifyRecord(t *testing.T) {
	record := sampleRecord(t)
	before := sampleRecord(t)

	exporter := NewExporter(openerFor(&fakeSurface{}, nil))
	for _, format := range Formats() {
		_, err := exporter.Export(context.Background(), record, format, "")
		require.NoError(t, err)
	}
	assert.Equal(t, before, record)
}

func TestExport_PrintDisplaysMarkup(t *testing.T) {
	surface := &fakeSurface{}
	exporter := NewExporter(openerFor(surface, nil))

	artifact, err := exporter.Export(context.Background(), sampleRecord(t), FormatPrint, "ignored")
	require.NoError(t, err)

	require.Len(t, surface.displayed, 1)
	assert.Equal(t, surface.displayed[0], string(artifact.Content))
	assert.Contains(t, surface.displayed[0], "Sarah Bennett")
	assert.Empty(t, artifact.FileName)
	assert.Equal(t, "text/html; charset=utf-8", artifact.MIMEType)
}

func TestExport_PrintCapabilityErrors(t *testing.T) {
	openErr := errors.New("pop-up blocked")
	displayErr := errors.New("window closed")

	tests := []struct {
		name      string
		opener    SurfaceOpener
		wantCause error
	}{
		{"no opener", nil, nil},
		{"open fails", openerFor(nil, openErr), openErr},
		{"display fails", openerFor(&fakeSurface{displayErr: displayErr}, nil), displayErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifact, err := NewExporter(tt.opener).Export(context.Background(), sampleRecord(t), FormatPrint, "")
			require.Error(t, err)
			assert.Nil(t, artifact)

			assert.ErrorIs(t, err, ErrCapabilityUnavailable)
			var capErr *CapabilityError
			require.ErrorAs(t, err, &capErr)
			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause)
			}
		})
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := NewExporter(nil).Export(context.Background(), sampleRecord(t), Format("yaml"), "")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}
