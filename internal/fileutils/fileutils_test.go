package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"xmlcsv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("<x/>"), 0600))
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "vales_2024.xml"))
	touch(t, filepath.Join(dir, "comissao_jan.xml"))
	touch(t, filepath.Join(dir, "notes.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.xml"), 0750))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0750))
	touch(t, filepath.Join(dir, "sub", "nested.xml"))

	files, err := ListFiles(dir, "*.xml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "comissao_jan.xml"),
		filepath.Join(dir, "vales_2024.xml"),
	}, files)
}

func TestListFiles_NoMatches(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "readme.md"))

	files, err := ListFiles(dir, "*.xml")
	assert.Nil(t, files)
	assert.ErrorIs(t, err, parsererror.ErrNoInputFound)
}

func TestListFiles_MissingDirectory(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "nope"), "*.xml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, parsererror.ErrNoInputFound)
}

func TestListFiles_BadPattern(t *testing.T) {
	_, err := ListFiles(t.TempDir(), "[")
	assert.Error(t, err)
}

func TestReplaceExtension(t *testing.T) {
	assert.Equal(t, "comissao_jan2024.csv", CSVPath("comissao_jan2024.xml"))
	assert.Equal(t, filepath.Join("in", "vales.2024.csv"), CSVPath(filepath.Join("in", "vales.2024.xml")))
	assert.Equal(t, "vales_2024.csv", CSVPath("vales_2024"))
	assert.Equal(t, "a.txt", ReplaceExtension("a.xml", ".txt"))
}

func TestFileAndDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.xml")
	touch(t, file)

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}
