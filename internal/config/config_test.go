package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendr/lendr/internal/config/data"
)

func TestConfigLoadMissing(t *testing.T) {
	cfg := NewConfig(filepath.Join(t.TempDir(), "lendr.yaml"))

	require.NoError(t, cfg.Load(false))
	assert.Error(t, cfg.Load(true))
	assert.Equal(t, data.DefaultView, cfg.Lendr.ActiveView())
}

func TestConfigLoadValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lendr.yaml")
	raw := `lendr:
  refreshRate: -1
  locale: es
  table:
    pageSize: 7
    pageSizes: [50, 0, 20, 20]
  view:
    active: requests
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg := NewConfig(path)
	require.NoError(t, cfg.Load(true))

	l := cfg.Lendr
	assert.Equal(t, float32(DefaultRefreshRate), l.GetRefreshRate())
	assert.Equal(t, "es", l.DisplayLocale())
	assert.Equal(t, []int{20, 50}, l.Table.PageSizes)
	assert.Equal(t, 20, l.Table.PageSize)
	assert.Equal(t, "requests", l.ActiveView())
	assert.Equal(t, DefaultLogLevel, l.Logger.Level)
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lendr.yaml")
	cfg := NewConfig(path)

	require.NoError(t, cfg.Save(false))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	cfg.Lendr.SetActiveView("users")
	require.NoError(t, cfg.Save(true))

	reloaded := NewConfig(path)
	require.NoError(t, reloaded.Load(true))
	assert.Equal(t, "users", reloaded.Lendr.ActiveView())
}

func TestRefineFlags(t *testing.T) {
	cfg := NewConfig("")
	flags := NewFlags()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, flags)
	require.NoError(t, fs.Parse([]string{
		"--refresh", "9",
		"--readonly",
		"-c", "inbox",
		"--source", "devices.db",
		"--locale", "es",
		"-l", "debug",
	}))

	require.NoError(t, cfg.Refine(flags))

	l := cfg.Lendr
	assert.Equal(t, float32(9), l.GetRefreshRate())
	assert.True(t, l.IsReadOnly())
	assert.Equal(t, "inbox", l.ActiveView())
	assert.Equal(t, "devices.db", l.DataSource())
	assert.Equal(t, "es", l.DisplayLocale())
	assert.Equal(t, "debug", l.Logger.Level)

	l.SetActiveView("users")
	assert.Equal(t, "users", l.ActiveView())
}

func TestDataSourceFallback(t *testing.T) {
	AppDatasetFile = "/tmp/lendr/dataset.yaml"
	l := NewLendr()
	assert.Equal(t, AppDatasetFile, l.DataSource())

	l.Source = "other.json"
	assert.Equal(t, "other.json", l.DataSource())
}

func TestInitLocs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	require.NoError(t, InitLocs())

	assert.Equal(t, filepath.Join(dir, "config", "lendr", "lendr.yaml"), AppConfigFile)
	assert.Equal(t, filepath.Join(dir, "data", "lendr", "favorites.yaml"), AppFavoritesFile)
	assert.Equal(t, filepath.Join(dir, "state", "lendr", "lendr.log"), AppLogFile)
	assert.DirExists(t, AppExportDir)
}
