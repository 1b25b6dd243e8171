package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/tinytelemetry/widgetdeck/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSnapshotter struct {
	dbPath string
	data   []byte
	calls  atomic.Int32
	err    error
}

func (f *fakeSnapshotter) DBPath() string { return f.dbPath }

func (f *fakeSnapshotter) SnapshotTo(dstPath string) error {
	f.calls.Add(1)
	if f.err != nil {
		return f.err
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(dstPath, f.data, 0644)
}

// stepClock advances one second per call.
func stepClock() func() time.Time {
	t := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestNewManager_Disabled(t *testing.T) {
	t.Parallel()

	m, err := NewManager(&fakeSnapshotter{dbPath: "/tmp/widgetdeck.db", data: []byte("x")}, Config{}, nil)
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	if m != nil {
		t.Fatal("expected nil manager when disabled")
	}
}

func TestNewManager_EnabledRequiresDBPath(t *testing.T) {
	t.Parallel()

	_, err := NewManager(&fakeSnapshotter{dbPath: "", data: []byte("x")}, Config{
		Enabled:  true,
		LocalDir: t.TempDir(),
	}, nil)
	if err == nil {
		t.Fatal("expected error for empty db path")
	}
}

func TestNewManager_EnabledRequiresDir(t *testing.T) {
	t.Parallel()

	_, err := NewManager(&fakeSnapshotter{dbPath: "/tmp/widgetdeck.db"}, Config{Enabled: true}, nil)
	if err == nil {
		t.Fatal("expected error for empty backup dir")
	}
}

func TestRunOnce_CreatesAndPrunesLocalBackups(t *testing.T) {
	t.Parallel()

	localDir := t.TempDir()
	m, err := NewManager(&fakeSnapshotter{dbPath: "/tmp/widgetdeck.db", data: []byte("snapshot")}, Config{
		Enabled:  true,
		LocalDir: localDir,
		KeepLast: 2,
	}, nil)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	m.now = stepClock()

	for i := 0; i < 3; i++ {
		if err := m.RunOnce(); err != nil {
			t.Fatalf("RunOnce #%d: %v", i+1, err)
		}
	}

	files, err := filepath.Glob(filepath.Join(localDir, "widgetdeck-*.db"))
	if err != nil {
		t.Fatalf("glob backups: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("backup files = %d, want 2", len(files))
	}
	// The oldest snapshot is the one pruned.
	for _, f := range files {
		if filepath.Base(f) == "widgetdeck-20240615-120001.000000000.db" {
			t.Fatalf("oldest snapshot %s should have been pruned", f)
		}
	}
}

func TestRunOnce_WrapsSnapshotError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	m, err := NewManager(&fakeSnapshotter{dbPath: "/tmp/widgetdeck.db", err: boom}, Config{
		Enabled:  true,
		LocalDir: t.TempDir(),
	}, nil)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.RunOnce(); !errors.Is(err, boom) {
		t.Fatalf("RunOnce error = %v, want wrapped boom", err)
	}
}

func TestRun_StopsWithContext(t *testing.T) {
	t.Parallel()

	snap := &fakeSnapshotter{dbPath: "/tmp/widgetdeck.db", data: []byte("snapshot")}
	m, err := NewManager(snap, Config{
		Enabled:  true,
		Interval: 5 * time.Millisecond,
		LocalDir: t.TempDir(),
		KeepLast: 2,
	}, nil)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for snap.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for periodic snapshots")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	m.Stop()
}

func TestManager_SnapshotsRealStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st, err := store.Open(store.DriverSQLite, filepath.Join(dir, "deck.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()
	if err := st.Set(context.Background(), "notes", `[]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	m, err := NewManager(st, Config{Enabled: true, LocalDir: filepath.Join(dir, "backups")}, nil)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.RunOnce(); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "backups", "widgetdeck-*.db"))
	if len(files) != 1 {
		t.Fatalf("backup files = %d, want 1", len(files))
	}
	restored, err := store.Open(store.DriverSQLite, files[0])
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer restored.Close()
	if v, ok, err := restored.Get(context.Background(), "notes"); err != nil || !ok || v != "[]" {
		t.Fatalf("snapshot Get = %q, %v, %v", v, ok, err)
	}
}
