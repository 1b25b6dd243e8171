// Package migrate brings a widgetdeck database up to the current schema.
//
// The same embedded files run against both store drivers, DuckDB and SQLite,
// so every statement sticks to the subset the two dialects share: VARCHAR and
// TIMESTAMP columns, IF NOT EXISTS guards and ? placeholders. Files are named
// NNN_description.sql and applied once each, in version order; the highest
// recorded version in schema_migrations marks how far a database has come.
package migrate

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var files embed.FS

// Runner migrates one database handle.
type Runner struct{ db *sql.DB }

func NewRunner(db *sql.DB) *Runner {
	return &Runner{db: db}
}

type step struct {
	version int
	file    string
	stmt    string
}

// steps reads the embedded files. Two files claiming one version is an error
// rather than a silent pick.
func steps() ([]step, error) {
	names, err := fs.Glob(files, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	out := make([]step, 0, len(names))
	seen := make(map[int]string, len(names))
	for _, name := range names {
		base := path.Base(name)
		prefix, _, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: name must be NNN_description.sql", base)
		}
		v, err := strconv.Atoi(prefix)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("migration %s: bad version %q", base, prefix)
		}
		if prev, dup := seen[v]; dup {
			return nil, fmt.Errorf("migration %s: version %d already used by %s", base, v, prev)
		}
		seen[v] = base

		body, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", base, err)
		}
		out = append(out, step{version: v, file: base, stmt: string(body)})
	}

	slices.SortFunc(out, func(a, b step) int { return a.version - b.version })
	return out, nil
}

const ledgerDDL = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    INTEGER PRIMARY KEY,
	name       VARCHAR NOT NULL,
	applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

func (r *Runner) current() (int, error) {
	var v sql.NullInt64
	if err := r.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&v); err != nil {
		return 0, err
	}
	return int(v.Int64), nil
}

// Run applies every step newer than the database's recorded version and
// returns how many it applied. A failed step leaves earlier steps committed.
func (r *Runner) Run() (int, error) {
	if _, err := r.db.Exec(ledgerDDL); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}
	all, err := steps()
	if err != nil {
		return 0, err
	}
	cur, err := r.current()
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}

	applied := 0
	for _, s := range all {
		if s.version <= cur {
			continue
		}
		if err := r.apply(s); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}

func (r *Runner) apply(s step) (err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("%s: begin: %w", s.file, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(s.stmt); err != nil {
		return fmt.Errorf("%s: %w", s.file, err)
	}
	if _, err = tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", s.version, s.file); err != nil {
		return fmt.Errorf("%s: record version: %w", s.file, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", s.file, err)
	}
	return nil
}
