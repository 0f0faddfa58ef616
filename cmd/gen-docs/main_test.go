package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	err := run([]string{"gen-docs", "--doc-path", dir, "--markdown", "--man-page"})
	require.NoError(t, err)

	manFiles, err := filepath.Glob(filepath.Join(dir, "man", "*.1"))
	require.NoError(t, err)
	require.NotEmpty(t, manFiles, "should have generated man pages")

	manContent, err := os.ReadFile(filepath.Join(dir, "man", "hudkit-config-init.1"))
	require.NoError(t, err)
	require.Contains(t, string(manContent), "hudkit config init")

	mdContent, err := os.ReadFile(filepath.Join(dir, "markdown", "hudkit_demo.md"))
	require.NoError(t, err)
	require.Contains(t, string(mdContent), "## hudkit demo")
	require.Contains(t, string(mdContent), "--delay-hide")
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing doc-path",
			args:    []string{"gen-docs", "--markdown"},
			wantErr: "--doc-path is required",
		},
		{
			name:    "no format specified",
			args:    []string{"gen-docs", "--doc-path", t.TempDir()},
			wantErr: "at least one format must be specified",
		},
		{
			name:    "unknown flag",
			args:    []string{"gen-docs", "--yaml"},
			wantErr: "unknown flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunMarkdownOnly(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, run([]string{"gen-docs", "--doc-path", dir, "--markdown"}))

	_, err := os.Stat(filepath.Join(dir, "man"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "markdown", "hudkit.md"))
	require.NoError(t, err)
}
