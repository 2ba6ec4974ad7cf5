package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return dir
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	useTempHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 10, cfg.UI.RowsPerPage)
	assert.Equal(t, 100, cfg.UI.NarrowBreakpoint)
	assert.True(t, cfg.UI.Notifications)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := useTempHome(t)

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://admin.example.com/api"
	cfg.Auth.Email = "ops@example.com"
	cfg.UI.StartPage = "orders"
	cfg.UI.RowsPerPage = 25
	require.NoError(t, Save(cfg))

	info, err := os.Stat(filepath.Join(dir, "config", appName, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	useTempHome(t)

	path, err := ConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  rows_per_page: 5\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.UI.RowsPerPage)
	assert.Equal(t, 100, cfg.UI.NarrowBreakpoint)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
}

func TestLoadRejectsInvalid(t *testing.T) {
	useTempHome(t)

	path, err := ConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("api:\n  timeout: soon\n"), 0600))

	_, err = Load()
	assert.ErrorContains(t, err, "api.timeout")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad scheme", func(c *Config) { c.API.BaseURL = "ftp://x" }, "api.base_url"},
		{"negative timeout", func(c *Config) { c.API.Timeout = "-1s" }, "api.timeout"},
		{"negative rows", func(c *Config) { c.UI.RowsPerPage = -1 }, "ui.rows_per_page"},
		{"negative breakpoint", func(c *Config) { c.UI.NarrowBreakpoint = -5 }, "ui.narrow_breakpoint"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"warn level", func(c *Config) { c.Log.Level = "WARN" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestTokenStorage(t *testing.T) {
	useTempHome(t)
	keyring.MockInit()
	t.Setenv("BACKOFFICE_TOKEN", "")

	assert.False(t, HasToken())
	assert.Error(t, SaveToken("   "))

	require.NoError(t, SaveToken(" stored-token\n"))
	token, err := GetToken()
	require.NoError(t, err)
	assert.Equal(t, "stored-token", token)

	t.Setenv("BACKOFFICE_TOKEN", "env-token")
	token, err = GetToken()
	require.NoError(t, err)
	assert.Equal(t, "env-token", token)

	t.Setenv("BACKOFFICE_TOKEN", "")
	require.NoError(t, ClearToken())
	assert.False(t, HasToken())
}

func TestTokenFileFallback(t *testing.T) {
	useTempHome(t)
	keyring.MockInitWithError(keyring.ErrUnsupportedPlatform)
	t.Setenv("BACKOFFICE_TOKEN", "")

	require.NoError(t, SaveToken("file-token"))

	dataDir, err := DataDir()
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dataDir, credFileName))
	require.NoError(t, err)
	assert.Equal(t, "file-token", string(data))

	token, err := GetToken()
	require.NoError(t, err)
	assert.Equal(t, "file-token", token)

	require.NoError(t, ClearToken())
	_, err = os.Stat(filepath.Join(dataDir, credFileName))
	assert.True(t, os.IsNotExist(err))
}
