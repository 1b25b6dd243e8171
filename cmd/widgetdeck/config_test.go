package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points HOME at a temp dir so no real config file is read.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := isolateHome(t)

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "duckdb", cfg.StoreDriver)
	assert.Equal(t, filepath.Join(home, ".local", "share", "widgetdeck", "widgetdeck.db"), cfg.DBPath)
	assert.Equal(t, "127.0.0.1:3000", cfg.APIAddr)
	assert.Equal(t, defaultAPIRateLimit, cfg.APIRateLimit)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.False(t, cfg.BackupEnabled)
	assert.Empty(t, cfg.ConfigPath, "missing default config file is tolerated")
}

func TestLoadConfig_File(t *testing.T) {
	home := isolateHome(t)
	path := writeConfig(t, `
store-driver: sqlite
db-path: ~/deck/data.db
tick-interval: 250ms
backup-enabled: true
backup-keep-last: 3
reverse-scroll-wheel: true
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, filepath.Join(home, "deck", "data.db"), cfg.DBPath)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.True(t, cfg.BackupEnabled)
	assert.Equal(t, 3, cfg.BackupKeepLast)
	assert.True(t, cfg.ReverseScrollWheel)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, "api-addr: 127.0.0.1:4000\n")
	t.Setenv("WIDGETDECK_API_ADDR", "127.0.0.1:5000")
	t.Setenv("WIDGETDECK_API_RATE_LIMIT", "2.5")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:5000", cfg.APIAddr)
	assert.Equal(t, 2.5, cfg.APIRateLimit)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "store-driver: postgres\n"},
		{"negative rate limit", "api-rate-limit: -1\n"},
		{"zero tick interval", "tick-interval: 0s\n"},
		{"backup on memory store", "store-driver: memory\nbackup-enabled: true\n"},
		{"bad keep-last", "backup-enabled: true\nbackup-keep-last: 0\n"},
		{"malformed yaml", "store-driver: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateHome(t)
			_, err := loadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestAppConfig_DBPath(t *testing.T) {
	t.Parallel()

	assert.Empty(t, appConfig{StoreDriver: "memory", DBPath: "/x.db"}.dbPath())
	assert.Equal(t, "/x.db", appConfig{StoreDriver: "sqlite", DBPath: "/x.db"}.dbPath())
}
