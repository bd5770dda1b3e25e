package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run summarizes one analysis of a map.
type Run struct {
	ID       string
	MapKey   string
	Regions  int
	Mesas    int
	Ramps    int
	Edges    int
	Deposits int
	// Cached is true when the region grid came from the cache.
	Cached    bool
	Duration  time.Duration
	CreatedAt time.Time
}

// RecordRun inserts r and returns its id. An empty r.ID gets a new UUID and
// a zero r.CreatedAt is set to the current time.
func (db *DB) RecordRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := db.Exec(`
		INSERT INTO analysis_runs
			(run_id, map_key, regions, mesas, ramps, edges, deposits, cached, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.MapKey, r.Regions, r.Mesas, r.Ramps, r.Edges, r.Deposits, r.Cached,
		int64(r.Duration), r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}
	return r.ID, nil
}

// Runs returns the runs recorded for mapKey, oldest first.
func (db *DB) Runs(mapKey string) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, map_key, regions, mesas, ramps, edges, deposits, cached, duration_ns, created_at
		FROM analysis_runs
		WHERE map_key = ?
		ORDER BY created_at, run_id`, mapKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r         Run
			durNS     int64
			createdNS int64
		)
		if err := rows.Scan(&r.ID, &r.MapKey, &r.Regions, &r.Mesas, &r.Ramps, &r.Edges, &r.Deposits,
			&r.Cached, &durNS, &createdNS); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Duration = time.Duration(durNS)
		r.CreatedAt = time.Unix(0, createdNS)
		out = append(out, r)
	}
	return out, rows.Err()
}
