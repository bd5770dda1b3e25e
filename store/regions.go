package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/terrain/gridstore"
	"github.com/katalvlaran/terrain/segment"
)

// SaveRegions stores rg under key, replacing any previous entry.
func (db *DB) SaveRegions(key string, rg *segment.RegionGrid) error {
	ids := make([]byte, len(rg.IDs))
	for i, id := range rg.IDs {
		ids[i] = byte(id)
	}
	_, err := db.Exec(`
		INSERT INTO region_grids (map_key, width, height, ids, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(map_key) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			ids = excluded.ids,
			created_at = excluded.created_at`,
		key, rg.Width, rg.Height, ids, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save region grid %q: %w", key, err)
	}
	return nil
}

// LoadRegions returns the region grid stored under key, or ErrNotFound.
func (db *DB) LoadRegions(key string) (*segment.RegionGrid, error) {
	var (
		w, h int
		ids  []byte
	)
	err := db.QueryRow(`SELECT width, height, ids FROM region_grids WHERE map_key = ?`, key).Scan(&w, &h, &ids)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: region grid %q", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load region grid %q: %w", key, err)
	}

	area := make([]segment.AreaID, len(ids))
	for i, b := range ids {
		area[i] = segment.AreaID(b)
	}
	return segment.NewRegionGrid(gridstore.Bounds{Width: w, Height: h}, area)
}
