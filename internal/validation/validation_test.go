package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReadableFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "comissao_jan.xml")
	require.NoError(t, os.WriteFile(file, []byte("<Comissao/>"), 0600))

	assert.NoError(t, IsReadableFile(file))

	err := IsReadableFile(filepath.Join(dir, "missing.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	err = IsReadableFile(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}

func TestIsValidReportFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, IsValidReportFormat(f), f)
	}
	err := IsValidReportFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, json, yaml")
}

func TestIsValidLogFormat(t *testing.T) {
	assert.NoError(t, IsValidLogFormat("text"))
	assert.NoError(t, IsValidLogFormat("json"))
	assert.Error(t, IsValidLogFormat("logfmt"))
}
