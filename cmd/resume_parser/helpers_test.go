package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/config"
)

const parseResponse = `{
	"filename": "sarah.txt",
	"file_type": "txt",
	"text_length": 38,
	"data": {
		"entities": {
			"Name": [{"text": "Sarah Bennett"}],
			"Skill": ["Go", "Rust"],
			"Language": ["English"]
		}
	}
}`

// newBackend serves /health and answers every other request with body.
func newBackend(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// useConfig installs the defaults pointed at apiURL, with overrides applied,
// and restores the previous configuration and flags when the test ends.
func useConfig(t *testing.T, apiURL string, override func(*config.Config)) {
	t.Helper()
	prev := appConfig
	prevFormat, prevOut, prevName := parseFormat, parseOut, parseName
	prevExpFormat, prevExpOut, prevExpName, prevPDF := exportFormat, exportOut, exportName, exportPDF
	t.Cleanup(func() {
		appConfig = prev
		parseFormat, parseOut, parseName = prevFormat, prevOut, prevName
		exportFormat, exportOut, exportName, exportPDF = prevExpFormat, prevExpOut, prevExpName, prevPDF
	})

	cfg := config.Defaults()
	cfg.APIURL = apiURL
	if override != nil {
		override(&cfg)
	}
	appConfig = cfg
}

// newTestCommand returns a command whose output goes to the returned buffer.
func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}
