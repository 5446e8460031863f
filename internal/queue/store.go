package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"

	"apjobs/internal/config"
)

// Store provides read-only access to the Autophone jobs database.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to jobs.sqlite under the configured state directory. The
// connection is read-only; this process never writes queue state.
func Open(cfg *config.Config) (*Store, error) {
	dbPath := cfg.DatabasePath()
	if dbPath == "" {
		return nil, fmt.Errorf("%w: state directory not configured (set AUTOPHONE_DIR or paths.state_dir)", ErrDataSourceUnavailable)
	}

	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrDataSourceUnavailable, dbPath)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", ErrDataSourceUnavailable, dbPath, err)
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataSourceUnavailable, dbPath, err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location backing the store.
func (s *Store) Path() string {
	return s.path
}

// DeviceCounts returns pending job counts grouped by device.
func (s *Store) DeviceCounts(ctx context.Context) ([]DeviceCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT count(device), device FROM jobs GROUP BY device`)
	if err != nil {
		return nil, fmt.Errorf("pending jobs by device: %w", err)
	}
	defer rows.Close()

	var counts []DeviceCount
	for rows.Next() {
		var entry DeviceCount
		if err := rows.Scan(&entry.Count, &entry.Device); err != nil {
			return nil, fmt.Errorf("scan device count: %w", err)
		}
		counts = append(counts, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pending jobs by device: %w", err)
	}
	return counts, nil
}

// BuildCounts returns pending job counts grouped by build.
func (s *Store) BuildCounts(ctx context.Context) ([]BuildCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT count(build_id), build_id, build_url FROM jobs GROUP BY build_id, build_url`)
	if err != nil {
		return nil, fmt.Errorf("pending jobs by build: %w", err)
	}
	defer rows.Close()

	var counts []BuildCount
	for rows.Next() {
		var entry BuildCount
		if err := rows.Scan(&entry.Count, &entry.BuildID, &entry.BuildURL); err != nil {
			return nil, fmt.Errorf("scan build count: %w", err)
		}
		counts = append(counts, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pending jobs by build: %w", err)
	}
	return counts, nil
}

// PendingTests returns the number of tests attached to pending jobs.
func (s *Store) PendingTests(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT count(1) FROM tests JOIN jobs ON tests.jobid = jobs.id`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("pending tests: %w", err)
	}
	return count, nil
}

// PendingSubmissions returns the number of results awaiting Treeherder submission.
func (s *Store) PendingSubmissions(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT count(1) FROM treeherder`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("pending treeherder submissions: %w", err)
	}
	return count, nil
}
