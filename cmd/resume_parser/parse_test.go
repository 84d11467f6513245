package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/config"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/rendering"
)

func writeResume(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("Sarah Bennett\nGo, Rust\nEnglish\n"), 0644))
	return path
}

func TestParseCommand_WritesJSONToOutputDir(t *testing.T) {
	backend := newBackend(t, 200, parseResponse)
	useConfig(t, backend.URL, nil)

	tmpDir := t.TempDir()
	input := writeResume(t, tmpDir, "sarah.txt")
	outDir := filepath.Join(tmpDir, "out")

	parseFormat, parseOut, parseName = "json", outDir, ""
	cmd, out := newTestCommand()
	require.NoError(t, runParse(cmd, []string{input}))

	written := filepath.Join(outDir, "sarah.json")
	assert.Contains(t, out.String(), "Wrote "+written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	record, err := rendering.DecodeJSON(data)
	require.NoError(t, err)
	require.NotNil(t, record.Name)
	assert.Equal(t, "Sarah Bennett", *record.Name)
	assert.Equal(t, []string{"Go", "Rust"}, record.Skills)
}

func TestParseCommand_TextToStdout(t *testing.T) {
	backend := newBackend(t, 200, parseResponse)
	useConfig(t, backend.URL, func(c *config.Config) { c.Format = "text" })

	input := writeResume(t, t.TempDir(), "sarah.txt")

	parseFormat, parseOut, parseName = "", "-", ""
	cmd, out := newTestCommand()
	require.NoError(t, runParse(cmd, []string{input}))

	assert.Equal(t, "Sarah Bennett's Resume\n\nSKILLS:\nGo, Rust\n\nLANGUAGES:\n1. English\n", out.String())
}

func TestParseCommand_NameOverride(t *testing.T) {
	backend := newBackend(t, 200, parseResponse)
	useConfig(t, backend.URL, nil)

	tmpDir := t.TempDir()
	input := writeResume(t, tmpDir, "sarah.txt")

	parseFormat, parseOut, parseName = "text", tmpDir, "my-cv"
	cmd, _ := newTestCommand()
	require.NoError(t, runParse(cmd, []string{input}))

	assert.FileExists(t, filepath.Join(tmpDir, "my-cv.txt"))
}

func TestParseCommand_NameRequiresSingleFile(t *testing.T) {
	useConfig(t, "http://localhost:1", nil)

	parseFormat, parseOut, parseName = "json", "-", "cv"
	cmd, _ := newTestCommand()
	err := runParse(cmd, []string{"a.txt", "b.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name")
}

func TestParseCommand_UnknownFormat(t *testing.T) {
	useConfig(t, "http://localhost:1", nil)

	parseFormat, parseOut, parseName = "yaml", "-", ""
	cmd, _ := newTestCommand()
	err := runParse(cmd, []string{"a.txt"})

	var formatErr *rendering.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestParseCommand_ContinuesPastFailures(t *testing.T) {
	backend := newBackend(t, 200, parseResponse)
	useConfig(t, backend.URL, nil)

	tmpDir := t.TempDir()
	good := writeResume(t, tmpDir, "sarah.txt")
	bad := filepath.Join(tmpDir, "photo.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a resume"), 0644))
	missing := filepath.Join(tmpDir, "missing.txt")

	parseFormat, parseOut, parseName = "json", tmpDir, ""
	cmd, _ := newTestCommand()
	err := runParse(cmd, []string{good, bad, missing})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "2 of 3 files failed")
	assert.Contains(t, err.Error(), "Unsupported file type: .png")
	assert.Contains(t, err.Error(), "missing.txt")
	assert.FileExists(t, filepath.Join(tmpDir, "sarah.json"))
}

func TestParseCommand_ServiceError(t *testing.T) {
	backend := newBackend(t, 422, `{"detail": "Could not extract text"}`)
	useConfig(t, backend.URL, nil)

	input := writeResume(t, t.TempDir(), "sarah.txt")

	parseFormat, parseOut, parseName = "json", "-", ""
	cmd, _ := newTestCommand()
	err := runParse(cmd, []string{input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not extract text")
}

func TestParseCommand_VerbosePrintsSummary(t *testing.T) {
	backend := newBackend(t, 200, parseResponse)
	useConfig(t, backend.URL, func(c *config.Config) { c.Verbose = true })

	input := writeResume(t, t.TempDir(), "sarah.txt")

	parseFormat, parseOut, parseName = "json", "-", ""
	cmd, out := newTestCommand()
	require.NoError(t, runParse(cmd, []string{input}))

	assert.Contains(t, out.String(), "UPLOADED RESUME")
	assert.Contains(t, out.String(), "NORMALIZED RESUME")
	assert.Contains(t, out.String(), `"name": "Sarah Bennett"`)
}
