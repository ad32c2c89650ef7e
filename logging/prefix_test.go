package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useDefaultDir points DefaultLoggingDir at a temp dir and clears the
// environment override for the duration of the test.
func useDefaultDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := DefaultLoggingDir
	DefaultLoggingDir = dir
	t.Cleanup(func() { DefaultLoggingDir = old })
	t.Setenv(EnvLoggingDir, "")
	return dir
}

func TestGetPrefix(t *testing.T) {
	t.Run("default with package", func(t *testing.T) {
		dir := useDefaultDir(t)
		assert.Equal(t, filepath.Join(dir, "hpp"), GetPrefix("hpp"))
	})

	t.Run("default without package", func(t *testing.T) {
		dir := useDefaultDir(t)
		assert.Equal(t, dir, GetPrefix(""))
	})

	t.Run("environment override ignores package", func(t *testing.T) {
		useDefaultDir(t)
		override := t.TempDir()
		t.Setenv(EnvLoggingDir, override)
		assert.Equal(t, override, GetPrefix("hpp"))
	})
}

func TestGetFilenameCreatesDirectories(t *testing.T) {
	dir := useDefaultDir(t)

	path, err := GetFilename("journal", "hpp")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "/hpp/journal"), path)

	info, err := os.Stat(filepath.Join(dir, "hpp"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	nested, err := GetFilename(filepath.Join("a", "b", "c.log"), "pkg")
	require.NoError(t, err)
	info, err = os.Stat(filepath.Dir(nested))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetFilenamePropagatesMkdirFailure(t *testing.T) {
	useDefaultDir(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	t.Setenv(EnvLoggingDir, filepath.Join(blocker, "sub"))

	path, err := GetFilename("journal", "hpp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), errMsgMkdir)
	assert.Empty(t, path)
}

func TestJournalFilenameCarriesPid(t *testing.T) {
	assert.Equal(t, fmt.Sprintf("journal.%d.log", os.Getpid()), journalFilename(JournalStem))
	assert.Equal(t, fmt.Sprintf("benchmark.%d.log", os.Getpid()), journalFilename(BenchmarkStem))
	assert.Equal(t, journalFilename(JournalStem), journalFilename(""))
}

func TestResolveJournalPath(t *testing.T) {
	t.Run("shared hpp prefix", func(t *testing.T) {
		useDefaultDir(t)
		cfg := DefaultConfig()
		cfg.PackageName = ""

		path, err := resolveJournalPath(JournalStem, &cfg)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(path, fmt.Sprintf("/hpp/journal.%d.log", os.Getpid())), path)
	})

	t.Run("explicit dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		cfg := DefaultConfig()
		cfg.Dir = dir

		path, err := resolveJournalPath(BenchmarkStem, &cfg)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, journalFilename(BenchmarkStem)), path)
	})
}
