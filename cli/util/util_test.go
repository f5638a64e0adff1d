package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	yamlPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath,
		[]byte("contemplate:\n  templates:\n    - path: ./templates\n"), 0o644))

	raw, err := ParseYAML(yamlPath)
	require.NoError(t, err)
	require.Contains(t, raw, "contemplate")
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := ParseYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	yamlPath := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("a: [broken"), 0o644))
	_, err = ParseYAML(yamlPath)
	require.Error(t, err)
}

func TestArgError(t *testing.T) {
	err := NewArgError("class name is required")
	require.EqualError(t, err, "class name is required")

	var argError *ArgError
	require.True(t, errors.As(err, &argError))
}

func TestIsDirAndIsRegularFile(t *testing.T) {
	workDir := t.TempDir()
	filePath := filepath.Join(workDir, "file.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

	require.True(t, IsDir(workDir))
	require.False(t, IsDir(filePath))
	require.True(t, IsRegularFile(filePath))
	require.False(t, IsRegularFile(workDir))
	require.False(t, IsRegularFile(filepath.Join(workDir, "missing")))
}
