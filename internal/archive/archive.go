// Package archive keeps a local history of fetch runs in SQLite, so an
// operator can see when the dataset was last rebuilt and what went
// wrong during collection.
package archive

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rilchief/afrostats/internal/dataset"
)

type Archive struct {
	db *sql.DB
}

const createTablesQuery = `
CREATE TABLE IF NOT EXISTS FetchRun (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  started_at DATETIME NOT NULL,
  completed_at DATETIME NOT NULL,
  playlist_count INTEGER NOT NULL,
  track_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS MissingArtist (
  run_id INTEGER,
  artist TEXT,
  FOREIGN KEY (run_id) REFERENCES FetchRun(id),
  PRIMARY KEY (run_id, artist)
);

CREATE TABLE IF NOT EXISTS SkippedPlaylist (
  run_id INTEGER,
  slug TEXT,
  playlist_id TEXT,
  status TEXT,
  message TEXT,
  FOREIGN KEY (run_id) REFERENCES FetchRun(id),
  PRIMARY KEY (run_id, slug)
);
`

func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	if _, err := db.Exec(createTablesQuery); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive tables: %w", err)
	}

	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// Run is one recorded fetch of the dataset.
type Run struct {
	ID             int64
	StartedAt      time.Time
	CompletedAt    time.Time
	PlaylistCount  int
	TrackCount     int
	MissingArtists int
	Skipped        int
}

// RecordRun inserts a run with its missing artists and skipped
// playlists, transactionally.
func (a *Archive) RecordRun(run Run, missing []string, skipped map[string]dataset.SkippedPlaylist) (int64, error) {
	tx, err := a.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"INSERT INTO FetchRun (started_at, completed_at, playlist_count, track_count) VALUES (?, ?, ?, ?)",
		run.StartedAt, run.CompletedAt, run.PlaylistCount, run.TrackCount)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, artist := range missing {
		if _, err := tx.Exec("INSERT OR IGNORE INTO MissingArtist (run_id, artist) VALUES (?, ?)", runID, artist); err != nil {
			return 0, fmt.Errorf("inserting missing artist %q: %w", artist, err)
		}
	}
	for slug, sp := range skipped {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO SkippedPlaylist (run_id, slug, playlist_id, status, message) VALUES (?, ?, ?, ?, ?)",
			runID, slug, sp.PlaylistID, sp.Status, sp.Message); err != nil {
			return 0, fmt.Errorf("inserting skipped playlist %q: %w", slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return runID, nil
}

// ListRuns returns all recorded runs, newest first.
func (a *Archive) ListRuns() ([]Run, error) {
	const query = `
	SELECT r.id, r.started_at, r.completed_at, r.playlist_count, r.track_count,
	  (SELECT COUNT(*) FROM MissingArtist m WHERE m.run_id = r.id),
	  (SELECT COUNT(*) FROM SkippedPlaylist s WHERE s.run_id = r.id)
	FROM FetchRun r
	ORDER BY r.started_at DESC
	`
	rows, err := a.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.CompletedAt,
			&run.PlaylistCount, &run.TrackCount, &run.MissingArtists, &run.Skipped); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}
