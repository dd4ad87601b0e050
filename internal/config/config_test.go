package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/search"
)

// clearTokenEnv unsets token variables for the test and restores them afterwards
func clearTokenEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MARQUEE_TMDB_TOKEN", "TMDB_TOKEN"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	clearTokenEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(writeConfig(t, "logging:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.TMDB.BaseURL)
	assert.Equal(t, DefaultImageBaseURL, cfg.TMDB.ImageBaseURL)
	assert.Equal(t, DefaultSettleDelay, cfg.UI.SettleDelay)
	assert.Equal(t, DefaultInitialQuery, cfg.UI.InitialQuery)
	assert.Equal(t, search.DefaultInitialQuery, cfg.UI.InitialQuery)
	assert.Equal(t, search.DefaultSettleDelay, cfg.UI.SettleDelay)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.IsConfigured())
	assert.ErrorIs(t, cfg.Validate(), ErrMissingToken)
}

func TestLoadConfigFile(t *testing.T) {
	clearTokenEnv(t)
	t.Chdir(t.TempDir())

	path := writeConfig(t, `
tmdb:
  base_url: http://localhost:9999/3
  token: " file-token "
  language: en-US
  include_adult: true
ui:
  settle_delay: 250ms
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "file-token", cfg.TMDB.Token)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.True(t, cfg.TMDB.IncludeAdult)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.SettleDelay)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{
			name:     "prefixed variable",
			env:      map[string]string{"MARQUEE_TMDB_TOKEN": "prefixed"},
			expected: "prefixed",
		},
		{
			name:     "bare variable",
			env:      map[string]string{"TMDB_TOKEN": "bare"},
			expected: "bare",
		},
		{
			name:     "prefixed wins over bare",
			env:      map[string]string{"MARQUEE_TMDB_TOKEN": "prefixed", "TMDB_TOKEN": "bare"},
			expected: "prefixed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTokenEnv(t)
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(writeConfig(t, "tmdb:\n  token: from-file\n"))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.TMDB.Token)
		})
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	clearTokenEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TMDB_TOKEN=from-dotenv\n"), 0o600))
	// godotenv writes straight to the process environment
	t.Cleanup(func() { os.Unsetenv("TMDB_TOKEN") })

	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.TMDB.Token)
}

func TestLoadDotEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MARQUEE_DOTENV_A=env\nMARQUEE_DOTENV_B=env\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("MARQUEE_DOTENV_A=local\n"), 0o600))
	t.Setenv("MARQUEE_DOTENV_B", "")
	require.NoError(t, os.Unsetenv("MARQUEE_DOTENV_B"))
	t.Setenv("MARQUEE_DOTENV_C", "process")
	t.Cleanup(func() { os.Unsetenv("MARQUEE_DOTENV_A") })

	loaded, err := LoadDotEnv(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, ".env.local"), filepath.Join(dir, ".env")}, loaded)
	assert.Equal(t, "local", os.Getenv("MARQUEE_DOTENV_A"))
	assert.Equal(t, "env", os.Getenv("MARQUEE_DOTENV_B"))
	assert.Equal(t, "process", os.Getenv("MARQUEE_DOTENV_C"))
}

func TestLoadDotEnvNoFiles(t *testing.T) {
	loaded, err := LoadDotEnv(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadConfigMalformedDotEnv(t *testing.T) {
	clearTokenEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TMDB_TOKEN=\"unterminated\n"), 0o600))

	_, err := LoadConfig(writeConfig(t, "{}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading .env")
}

func TestLoadConfigInvalidFile(t *testing.T) {
	clearTokenEnv(t)
	t.Chdir(t.TempDir())

	_, err := LoadConfig(writeConfig(t, "tmdb: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing token", mutate: func(c *Config) { c.TMDB.Token = "" }, wantErr: true},
		{name: "empty base url", mutate: func(c *Config) { c.TMDB.BaseURL = "" }, wantErr: true},
		{name: "negative settle delay", mutate: func(c *Config) { c.UI.SettleDelay = -time.Second }, wantErr: true},
		{name: "zero settle delay", mutate: func(c *Config) { c.UI.SettleDelay = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.TMDB.Token = "token"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
