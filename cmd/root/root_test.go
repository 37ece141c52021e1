package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"xmlcsv/cmd/root"
	"xmlcsv/cmd/version"
	"xmlcsv/internal/config"
	"xmlcsv/internal/container"
	"xmlcsv/internal/logging"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "xmlcsv", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "XML")
	assert.Contains(t, root.Cmd.Long, "semicolon-delimited CSV")
	assert.Equal(t, version.Version, root.Cmd.Version)
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.True(t, root.Cmd.SilenceErrors)
}

func useContainer(t *testing.T, cfg *config.Config) {
	t.Helper()
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	previous := root.AppContainer
	root.AppContainer = c
	t.Cleanup(func() { root.AppContainer = previous })
}

func TestRootCommand_Interactive(t *testing.T) {
	cfg := config.Default()
	cfg.Input.Directory = t.TempDir()
	useContainer(t, cfg)

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetArgs([]string{})

	require.NoError(t, root.Cmd.Execute())
	assert.Contains(t, out.String(), "Bem-vindo ao Conversor XML para CSV!")
	assert.Contains(t, out.String(), "Não foram encontrados arquivos XML na pasta.")
}

func TestRootCommand_InteractiveMissingDirectory(t *testing.T) {
	cfg := config.Default()
	cfg.Input.Directory = filepath.Join(t.TempDir(), "missing")
	useContainer(t, cfg)

	root.Cmd.SetOut(&bytes.Buffer{})
	root.Cmd.SetArgs([]string{})

	assert.Error(t, root.Cmd.Execute())
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestRootCommand_VersionFlag(t *testing.T) {
	useContainer(t, config.Default())

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetArgs([]string{"--version"})

	require.NoError(t, root.Cmd.Execute())
	assert.Equal(t, version.String()+"\n", out.String())
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	useContainer(t, config.Default())
	root.Cmd.SetOut(&bytes.Buffer{})
	root.Cmd.SetArgs([]string{"comissao_jan.xml"})

	assert.Error(t, root.Cmd.Execute())
}
