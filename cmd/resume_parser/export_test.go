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

const recordJSON = `{
  "name": "Sarah Bennett",
  "skills": ["Go"],
  "work_experience": [],
  "education": [],
  "languages": [],
  "raw_entities": {"Skill": ["Go"]}
}`

func writeRecord(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sarah.json")
	require.NoError(t, os.WriteFile(path, []byte(recordJSON), 0644))
	return path
}

func TestExportCommand_TextUsesRecordFileName(t *testing.T) {
	tmpDir := t.TempDir()
	useConfig(t, "http://localhost:1", func(c *config.Config) { c.OutputDir = tmpDir })

	exportFormat, exportOut, exportName, exportPDF = "text", "", "", ""
	cmd, out := newTestCommand()
	require.NoError(t, runExport(cmd, []string{writeRecord(t, t.TempDir())}))

	written := filepath.Join(tmpDir, "sarah.txt")
	assert.Contains(t, out.String(), "Wrote "+written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Bennett's Resume\n\nSKILLS:\nGo\n\n", string(data))
}

func TestExportCommand_JSONToStdout(t *testing.T) {
	useConfig(t, "http://localhost:1", nil)

	exportFormat, exportOut, exportName, exportPDF = "json", "-", "", ""
	cmd, out := newTestCommand()
	require.NoError(t, runExport(cmd, []string{writeRecord(t, t.TempDir())}))

	record, err := rendering.DecodeJSON(out.Bytes())
	require.NoError(t, err)
	require.NotNil(t, record.Name)
	assert.Equal(t, "Sarah Bennett", *record.Name)
}

func TestExportCommand_ExplicitOutPath(t *testing.T) {
	useConfig(t, "http://localhost:1", nil)

	outPath := filepath.Join(t.TempDir(), "nested", "cv.json")
	exportFormat, exportOut, exportName, exportPDF = "json", outPath, "", ""
	cmd, _ := newTestCommand()
	require.NoError(t, runExport(cmd, []string{writeRecord(t, t.TempDir())}))

	assert.FileExists(t, outPath)
}

func TestExportCommand_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	invalid := filepath.Join(tmpDir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"name": 3}`), 0644))

	tests := []struct {
		name        string
		path        string
		format      string
		errorString string
	}{
		{"missing file", filepath.Join(tmpDir, "missing.json"), "json", "failed to read record file"},
		{"invalid record", invalid, "json", "invalid structured resume"},
		{"unknown format", writeRecord(t, tmpDir), "yaml", `"yaml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfig(t, "http://localhost:1", nil)

			exportFormat, exportOut, exportName, exportPDF = tt.format, "-", "", ""
			cmd, _ := newTestCommand()
			err := runExport(cmd, []string{tt.path})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestExportCommand_PrintWithoutBrowser(t *testing.T) {
	useConfig(t, "http://localhost:1", func(c *config.Config) {
		c.ChromePath = filepath.Join(t.TempDir(), "no-such-chrome")
	})

	exportFormat, exportOut, exportName, exportPDF = "print", "", "", ""
	cmd, _ := newTestCommand()
	err := runExport(cmd, []string{writeRecord(t, t.TempDir())})
	require.Error(t, err)

	assert.ErrorIs(t, err, rendering.ErrCapabilityUnavailable)
	assert.Contains(t, err.Error(), config.EnvChromePath)
}

func TestFileStem(t *testing.T) {
	assert.Equal(t, "sarah", fileStem("/tmp/sarah.json"))
	assert.Equal(t, "cv.final", fileStem("cv.final.pdf"))
	assert.Equal(t, "resume", fileStem("resume"))
}
