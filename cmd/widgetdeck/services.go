package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tinytelemetry/widgetdeck/internal/backup"
	"github.com/tinytelemetry/widgetdeck/internal/logging"
	"github.com/tinytelemetry/widgetdeck/internal/store"
)

// services holds what every subcommand opens from the config.
type services struct {
	cfg    appConfig
	store  *store.Store
	logger *zap.Logger
}

func openServices(cfg appConfig) (*services, error) {
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	st, err := store.Open(cfg.StoreDriver, cfg.dbPath(), cfg.QueryTimeout)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}
	logger.Info("store opened",
		zap.String("driver", cfg.StoreDriver),
		zap.String("path", cfg.dbPath()),
		zap.String("config", cfg.ConfigPath))

	return &services{cfg: cfg, store: st, logger: logger}, nil
}

// backupManager returns nil when backups are disabled.
func (s *services) backupManager() (*backup.Manager, error) {
	m, err := backup.NewManager(s.store, backup.Config{
		Enabled:  s.cfg.BackupEnabled,
		Interval: s.cfg.BackupInterval,
		LocalDir: s.cfg.BackupDir,
		KeepLast: s.cfg.BackupKeepLast,
	}, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize backups: %w", err)
	}
	return m, nil
}

func (s *services) Close() error {
	err := s.store.Close()
	_ = s.logger.Sync()
	return err
}
