package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/widgetdeck/internal/model"
	"github.com/tinytelemetry/widgetdeck/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    dev")
	assert.Contains(t, out, "Commit:     unknown")
}

// sqliteConfig writes a config that points at a fresh sqlite database and
// returns the config path and the database path.
func sqliteConfig(t *testing.T) (string, string) {
	t.Helper()
	isolateHome(t)
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "deck.db")
	cfgPath := writeConfig(t, fmt.Sprintf("store-driver: sqlite\ndb-path: %s\nlog-path: %s\n",
		dbPath, filepath.Join(dir, "deck.log")))
	return cfgPath, dbPath
}

func TestKeysCommand(t *testing.T) {
	cfgPath, dbPath := sqliteConfig(t)

	st, err := store.Open(store.DriverSQLite, dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Set(context.Background(), model.KeyTodo, `[{"title":"a"}]`))
	require.NoError(t, st.Close())

	out, err := execute(t, "keys", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "todo")
	assert.Contains(t, out, "To-Do")

	out, err = execute(t, "keys", "todo", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"a"}]`, strings.TrimSpace(out))

	_, err = execute(t, "keys", "mood", "--config", cfgPath)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRootCommand_BadConfig(t *testing.T) {
	isolateHome(t)
	_, err := execute(t, "keys", "--config", writeConfig(t, "store-driver: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestRunServe_StopsOnCancel(t *testing.T) {
	cfgPath, _ := sqliteConfig(t)
	cfg, err := loadConfig(cfgPath)
	require.NoError(t, err)
	cfg.APIAddr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, cfg) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runServe did not return after cancel")
	}
}
