package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCommand_Up(t *testing.T) {
	backend := newBackend(t, 200, "")
	useConfig(t, backend.URL, nil)

	cmd, out := newTestCommand()
	require.NoError(t, runHealth(cmd, nil))
	assert.Contains(t, out.String(), "extraction service is up at "+backend.URL)
}

func TestHealthCommand_Down(t *testing.T) {
	backend := newBackend(t, 200, "")
	url := backend.URL
	backend.Close()
	useConfig(t, url, nil)

	cmd, out := newTestCommand()
	err := runHealth(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, out.String(), "unreachable at "+url)
}
