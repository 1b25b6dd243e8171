package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/widgetdeck/internal/model"
	"github.com/tinytelemetry/widgetdeck/internal/store"
)

const (
	defaultStoreDriver    = model.DefaultStoreDriver
	defaultAPIAddr        = model.DefaultAPIAddr
	defaultAPIRateLimit   = 20.0 // requests per second, 0 = unlimited
	defaultLogLevel       = "info"
	defaultBackupInterval = 6 * time.Hour
	defaultBackupKeepLast = 24
	defaultTickInterval   = model.DefaultTickInterval
	defaultQueryTimeout   = 5 * time.Second
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	StoreDriver        string        `mapstructure:"store-driver"`
	DBPath             string        `mapstructure:"db-path"`
	QueryTimeout       time.Duration `mapstructure:"query-timeout"`
	APIAddr            string        `mapstructure:"api-addr"`
	APIRateLimit       float64       `mapstructure:"api-rate-limit"`
	LogPath            string        `mapstructure:"log-path"`
	LogLevel           string        `mapstructure:"log-level"`
	BackupEnabled      bool          `mapstructure:"backup-enabled"`
	BackupInterval     time.Duration `mapstructure:"backup-interval"`
	BackupDir          string        `mapstructure:"backup-dir"`
	BackupKeepLast     int           `mapstructure:"backup-keep-last"`
	TickInterval       time.Duration `mapstructure:"tick-interval"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
	ConfigPath         string        `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	dataDir := filepath.Join(home, ".local", "share", "widgetdeck")

	v := viper.New()
	v.SetEnvPrefix("WIDGETDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("store-driver", defaultStoreDriver)
	v.SetDefault("db-path", filepath.Join(dataDir, "widgetdeck.db"))
	v.SetDefault("query-timeout", defaultQueryTimeout)
	v.SetDefault("api-addr", defaultAPIAddr)
	v.SetDefault("api-rate-limit", defaultAPIRateLimit)
	v.SetDefault("log-path", filepath.Join(dataDir, "widgetdeck.log"))
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("backup-enabled", false)
	v.SetDefault("backup-interval", defaultBackupInterval)
	v.SetDefault("backup-dir", filepath.Join(dataDir, "backups"))
	v.SetDefault("backup-keep-last", defaultBackupKeepLast)
	v.SetDefault("tick-interval", defaultTickInterval)
	v.SetDefault("reverse-scroll-wheel", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "widgetdeck", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	// Expand ~ in paths
	for _, p := range []*string{&cfg.DBPath, &cfg.LogPath, &cfg.BackupDir} {
		if strings.HasPrefix(*p, "~/") {
			*p = filepath.Join(home, (*p)[2:])
		}
	}

	return cfg, cfg.validate()
}

func (c appConfig) validate() error {
	switch c.StoreDriver {
	case store.DriverDuckDB, store.DriverSQLite, store.DriverMemory:
	default:
		return fmt.Errorf("invalid store-driver %q: want duckdb, sqlite or memory", c.StoreDriver)
	}
	if c.StoreDriver != store.DriverMemory && strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db-path is required for store-driver %q", c.StoreDriver)
	}
	if c.APIRateLimit < 0 {
		return fmt.Errorf("invalid api-rate-limit: %v", c.APIRateLimit)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid tick-interval: %v", c.TickInterval)
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("invalid query-timeout: %v", c.QueryTimeout)
	}
	if c.BackupEnabled {
		if c.StoreDriver == store.DriverMemory {
			return errors.New("backup-enabled requires a file-backed store-driver")
		}
		if c.BackupInterval <= 0 {
			return fmt.Errorf("invalid backup-interval: %v", c.BackupInterval)
		}
		if c.BackupKeepLast <= 0 {
			return fmt.Errorf("invalid backup-keep-last: %d", c.BackupKeepLast)
		}
	}
	return nil
}

// dbPath is the path handed to store.Open; the memory driver has none.
func (c appConfig) dbPath() string {
	if c.StoreDriver == store.DriverMemory {
		return ""
	}
	return c.DBPath
}
