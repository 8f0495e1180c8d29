package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/transfers/internal/common"
	"github.com/Veraticus/transfers/internal/fetch"
	"github.com/Veraticus/transfers/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, fetch.DefaultEndpoint, s.API.Endpoint)
	assert.Equal(t, fetch.DefaultTimeout, s.API.Timeout)
	assert.Equal(t, fetch.DefaultMaxBodyBytes, s.API.MaxBodyBytes)
	assert.Equal(t, "unicode", s.UI.Icons)
	assert.Equal(t, "default", s.UI.Theme)
	assert.Equal(t, model.SortNone, s.UI.SortMode)
	assert.Equal(t, "info", s.Logging.Level)
	assert.Equal(t, "console", s.Logging.Format)
	assert.Empty(t, s.Logging.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `api:
  endpoint: http://localhost:8080/transfers
  timeout: 5s
ui:
  icons: ASCII
  theme: catppuccin-mocha
  default_sort: date-desc
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	v := newViper()
	require.NoError(t, ReadFile(v, path))

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/transfers", s.API.Endpoint)
	assert.Equal(t, 5*time.Second, s.API.Timeout)
	assert.Equal(t, "ascii", s.UI.Icons)
	assert.Equal(t, "catppuccin-mocha", s.UI.Theme)
	assert.Equal(t, model.SortDateDesc, s.UI.SortMode)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "json", s.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRANSFERS_API_ENDPOINT", "http://env.test/list")
	t.Setenv("TRANSFERS_API_TIMEOUT", "2s")
	t.Setenv("TRANSFERS_UI_DEFAULT_SORT", "Nama Z-A")

	s, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, "http://env.test/list", s.API.Endpoint)
	assert.Equal(t, 2*time.Second, s.API.Timeout)
	assert.Equal(t, model.SortNameDesc, s.UI.SortMode)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "endpoint not a url", key: "api.endpoint", value: "not a url"},
		{name: "zero timeout", key: "api.timeout", value: 0},
		{name: "unknown icons", key: "ui.icons", value: "emoji"},
		{name: "unknown theme", key: "ui.theme", value: "neon"},
		{name: "unknown sort", key: "ui.default_sort", value: "amount"},
		{name: "unknown level", key: "logging.level", value: "trace"},
		{name: "unknown format", key: "logging.format", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestReadFile_MissingDefaultIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	assert.NoError(t, ReadFile(newViper(), ""))
}

func TestReadFile_MissingExplicitFile(t *testing.T) {
	err := ReadFile(newViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TRANSFERS_UI_ICONS=ascii\n"), 0600))

	t.Setenv("TRANSFERS_UI_ICONS", "")
	require.NoError(t, os.Unsetenv("TRANSFERS_UI_ICONS"))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "ascii", os.Getenv("TRANSFERS_UI_ICONS"))

	s, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, "ascii", s.UI.Icons)

	err = LoadEnvFile(filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestLoadEnvFile_DefaultMissing(t *testing.T) {
	chdir(t, t.TempDir())
	assert.NoError(t, LoadEnvFile(""))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("TRANSFERS_TEST_DIR", "/var/tmp")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "~", want: home},
		{input: "~/logs/transfers.log", want: filepath.Join(home, "logs/transfers.log")},
		{input: "$TRANSFERS_TEST_DIR/app.log", want: "/var/tmp/app.log"},
		{input: "/abs/path", want: "/abs/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
