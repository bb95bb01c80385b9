package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "yarn.lock"), nil, 0o600))
	vendor := filepath.Join(root, "vendor", "x")
	require.NoError(t, os.MkdirAll(vendor, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(vendor, "package.json"), []byte(`{"name":"x","version":"1.2.0"}`), 0o600))

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "version",
			args:         []string{"version"},
			expectedExit: 0,
		},
		{
			name:         "pattern",
			args:         []string{"--cwd", root, "pattern", "x", "./vendor/x"},
			expectedExit: 0,
		},
		{
			name:         "resolve copy",
			args:         []string{"--cwd", root, "resolve", "x@file:./vendor/x"},
			expectedExit: 0,
		},
		{
			name:         "resolve missing",
			args:         []string{"--cwd", root, "resolve", "ghost@file:./vendor/ghost"},
			expectedExit: 1,
		},
		{
			name:         "verbose config",
			args:         []string{"--cwd", root, "--verbose", "config"},
			expectedExit: 0,
		},
		{
			name:         "version flag",
			args:         []string{"-v"},
			expectedExit: 0,
		},
		{
			name:         "invalid output",
			args:         []string{"--cwd", root, "-o", "xml", "config"},
			expectedExit: 1,
		},
		{
			name:         "unknown command",
			args:         []string{"frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedExit, run(tt.args))
		})
	}
}
