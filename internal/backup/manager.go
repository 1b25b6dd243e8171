package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultInterval = 6 * time.Hour
	defaultKeepLast = 24

	filePrefix = "widgetdeck-"
	fileSuffix = ".db"
	// Fixed-width stamp so lexical order matches chronology.
	stampLayout = "20060102-150405.000000000"
)

// Manager takes periodic local snapshots of the store and prunes old ones.
type Manager struct {
	store  Snapshotter
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// NewManager validates cfg. It returns nil when backups are disabled.
func NewManager(store Snapshotter, cfg Config, logger *zap.Logger) (*Manager, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if store == nil {
		return nil, errors.New("backup: nil snapshotter")
	}
	if strings.TrimSpace(store.DBPath()) == "" {
		return nil, errors.New("backup: db-path is empty (in-memory store)")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if strings.TrimSpace(cfg.LocalDir) == "" {
		return nil, errors.New("backup: backup-dir is required when backup is enabled")
	}
	if cfg.KeepLast <= 0 {
		cfg.KeepLast = defaultKeepLast
	}
	if err := os.MkdirAll(cfg.LocalDir, 0755); err != nil {
		return nil, fmt.Errorf("backup: create backup-dir: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Manager{
		store:  store,
		cfg:    cfg,
		logger: logger.Named("backup"),
		now:    time.Now,
		done:   make(chan struct{}),
	}, nil
}

// Start takes a startup snapshot, to shorten the recovery point after a
// restart, then snapshots every cfg.Interval until Stop.
func (m *Manager) Start() {
	if err := m.RunOnce(); err != nil {
		m.logger.Warn("startup snapshot failed", zap.Error(err))
	}
	m.wg.Add(1)
	go m.loop()
}

// Run starts the manager and blocks until ctx is done.
func (m *Manager) Run(ctx context.Context) error {
	m.Start()
	<-ctx.Done()
	m.Stop()
	return nil
}

func (m *Manager) loop() {
	defer m.wg.Done()
	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.RunOnce(); err != nil {
				m.logger.Warn("periodic snapshot failed", zap.Error(err))
			}
		case <-m.done:
			return
		}
	}
}

// RunOnce creates one local snapshot and prunes old copies.
func (m *Manager) RunOnce() error {
	fileName := filePrefix + m.now().UTC().Format(stampLayout) + fileSuffix
	localPath := filepath.Join(m.cfg.LocalDir, fileName)

	if err := m.store.SnapshotTo(localPath); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	m.logger.Info("created snapshot", zap.String("path", localPath))

	if err := pruneLocalBackups(m.cfg.LocalDir, m.cfg.KeepLast); err != nil {
		return fmt.Errorf("prune local backups: %w", err)
	}
	return nil
}

// Stop terminates the periodic backup loop. It is safe to call twice.
func (m *Manager) Stop() {
	m.once.Do(func() { close(m.done) })
	m.wg.Wait()
}

func pruneLocalBackups(localDir string, keepLast int) error {
	if keepLast <= 0 {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(localDir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return err
	}
	if len(matches) <= keepLast {
		return nil
	}

	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	for _, oldPath := range matches[keepLast:] {
		if err := os.Remove(oldPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
