package testsupport

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"apjobs/internal/config"
)

// Schema mirrors the subset of the Autophone daemon's jobs.sqlite layout the
// reporter reads. Production databases carry more columns; tests only need
// the ones the queries name.
const schema = `
CREATE TABLE jobs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    device TEXT NOT NULL,
    build_id TEXT NOT NULL,
    build_url TEXT NOT NULL,
    attempts INTEGER DEFAULT 0,
    created TEXT
);
CREATE TABLE tests (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    jobid INTEGER NOT NULL REFERENCES jobs(id),
    name TEXT
);
CREATE TABLE treeherder (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    machine TEXT,
    project TEXT,
    attempts INTEGER DEFAULT 0
);
`

// SeedDatabase creates jobs.sqlite under the config's state directory with
// the external schema and registers cleanup. The returned handle is writable
// so tests can insert fixtures.
func SeedDatabase(t testing.TB, cfg *config.Config) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", cfg.DatabasePath())
	if err != nil {
		t.Fatalf("open seed db: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

// InsertJob adds a pending job row and returns its ID.
func InsertJob(t testing.TB, db *sql.DB, device, buildID, buildURL string) int64 {
	t.Helper()

	res, err := db.Exec(
		`INSERT INTO jobs (device, build_id, build_url) VALUES (?, ?, ?)`,
		device, buildID, buildURL,
	)
	if err != nil {
		t.Fatalf("insert job: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("last insert id: %v", err)
	}
	return id
}

// InsertTest attaches a pending test to a job.
func InsertTest(t testing.TB, db *sql.DB, jobID int64, name string) {
	t.Helper()

	if _, err := db.Exec(`INSERT INTO tests (jobid, name) VALUES (?, ?)`, jobID, name); err != nil {
		t.Fatalf("insert test: %v", err)
	}
}

// InsertSubmission adds a pending Treeherder submission row.
func InsertSubmission(t testing.TB, db *sql.DB, machine string) {
	t.Helper()

	if _, err := db.Exec(`INSERT INTO treeherder (machine) VALUES (?)`, machine); err != nil {
		t.Fatalf("insert submission: %v", err)
	}
}
