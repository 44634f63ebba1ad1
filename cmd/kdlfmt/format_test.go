package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunFormatRewritesFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.kdl", "foo z=1 a=2\n")

	formatWrite = true
	formatCompact = false
	defer func() { formatWrite = false }()

	require.NoError(t, runFormat(&cobra.Command{}, []string{path}))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "foo a=2 z=1\n", string(out))
}

func TestRunFormatReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "bad.kdl", "foo \"unterminated\n")

	formatWrite = false
	formatCompact = false

	err := runFormat(&cobra.Command{}, []string{path})
	assert.Error(t, err)
}

func TestRunFormatMissingFile(t *testing.T) {
	err := runFormat(&cobra.Command{}, []string{"/does/not/exist.kdl"})
	assert.Error(t, err)
}
