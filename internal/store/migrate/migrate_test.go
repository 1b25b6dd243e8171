package migrate

import (
	"database/sql"
	"testing"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "modernc.org/sqlite"
)

var drivers = []struct {
	name string
	dsn  string
}{
	{"duckdb", ""},
	{"sqlite", ":memory:"},
}

func openTestDB(t *testing.T, driver, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open(driver, dsn)
	if err != nil {
		t.Fatalf("open %s: %v", driver, err)
	}
	// one connection so an in-memory sqlite database is shared
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func appliedVersions(t *testing.T, db *sql.DB) []int {
	t.Helper()
	rows, err := db.Query("SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		t.Fatalf("query schema_migrations: %v", err)
	}
	defer rows.Close()
	var out []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			t.Fatalf("scan: %v", err)
		}
		out = append(out, v)
	}
	return out
}

func TestRunCreatesKVTable(t *testing.T) {
	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			db := openTestDB(t, d.name, d.dsn)
			if _, err := NewRunner(db).Run(); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if _, err := db.Exec("INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)", "k", "[]"); err != nil {
				t.Fatalf("insert into kv_entries: %v", err)
			}
		})
	}
}

func TestRunIsIdempotent(t *testing.T) {
	all, err := steps()
	if err != nil {
		t.Fatalf("steps: %v", err)
	}
	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			db := openTestDB(t, d.name, d.dsn)
			r := NewRunner(db)
			n, err := r.Run()
			if err != nil {
				t.Fatalf("first Run: %v", err)
			}
			if n != len(all) {
				t.Errorf("first Run applied %d, want %d", n, len(all))
			}
			n, err = r.Run()
			if err != nil {
				t.Fatalf("second Run: %v", err)
			}
			if n != 0 {
				t.Errorf("second Run applied %d, want 0", n)
			}
			if got := appliedVersions(t, db); len(got) != len(all) || got[len(got)-1] != all[len(all)-1].version {
				t.Errorf("recorded versions = %v, want one per step up to %d", got, all[len(all)-1].version)
			}
		})
	}
}

func TestStepsAreOrdered(t *testing.T) {
	all, err := steps()
	if err != nil {
		t.Fatalf("steps: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("no embedded migrations")
	}
	for i, s := range all {
		if i > 0 && s.version <= all[i-1].version {
			t.Errorf("%s (v%d) follows v%d", s.file, s.version, all[i-1].version)
		}
		if s.stmt == "" {
			t.Errorf("%s is empty", s.file)
		}
	}
}
