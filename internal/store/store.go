// Package store persists widget state as JSON values under string keys in
// a small SQL table. DuckDB is the default engine; SQLite is available for
// hosts where cgo is unavailable.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "modernc.org/sqlite"

	"github.com/tinytelemetry/widgetdeck/internal/store/migrate"
)

// Supported drivers.
const (
	DriverDuckDB = "duckdb"
	DriverSQLite = "sqlite"
	DriverMemory = "memory" // in-memory DuckDB
)

const defaultQueryTimeout = 5 * time.Second

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("store: unknown driver")

// Store manages the database connection and implements model.KV.
type Store struct {
	db           *sql.DB
	mu           sync.RWMutex
	driver       string
	dbPath       string
	QueryTimeout time.Duration
}

// Open opens or creates a store. For the duckdb and sqlite drivers an empty
// dbPath means an in-memory database; the memory driver ignores dbPath.
// An optional queryTimeout can be passed; it defaults to 5s.
func Open(driver, dbPath string, queryTimeout ...time.Duration) (*Store, error) {
	if driver == DriverMemory {
		driver, dbPath = DriverDuckDB, ""
	}

	var dsn string
	switch driver {
	case DriverDuckDB:
		dsn = dbPath
	case DriverSQLite:
		dsn = ":memory:"
		if dbPath != "" {
			dsn = dbPath
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	if dbPath != "" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// a pooled second connection would see a different :memory: database
		// and contend for the file lock otherwise
		db.SetMaxOpenConns(1)
	}

	if _, err := migrate.NewRunner(db).Run(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	qt := defaultQueryTimeout
	if len(queryTimeout) > 0 && queryTimeout[0] > 0 {
		qt = queryTimeout[0]
	}

	return &Store{
		db:           db,
		driver:       driver,
		dbPath:       dbPath,
		QueryTimeout: qt,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Driver returns the engine in use (duckdb or sqlite).
func (s *Store) Driver() string {
	return s.driver
}

func (s *Store) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.QueryTimeout)
}
