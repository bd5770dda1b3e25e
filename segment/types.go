package segment

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/terrain/gridstore"
)

// Sentinel errors for segmentation.
var (
	// ErrSeedOutOfBounds is returned when a seed lies outside the map.
	ErrSeedOutOfBounds = errors.New("segment: seed out of bounds")
	// ErrNoSeeds is returned when no seed lies on admitted ground.
	ErrNoSeeds = errors.New("segment: no usable seed")
	// ErrTooManyRegions is returned when the map needs more ids than AreaID holds.
	ErrTooManyRegions = errors.New("segment: too many regions")
	// ErrRegionGap is returned by Validate when an id below Count owns no tile.
	ErrRegionGap = errors.New("segment: region id without tiles")
)

// AreaID identifies a region. Zero is reserved for blocked or unreached tiles.
type AreaID uint8

// MaxRegions is the largest number of regions a RegionGrid can hold.
const MaxRegions = math.MaxUint8

// RegionGrid assigns an AreaID to every tile, row-major like the base grids.
type RegionGrid struct {
	gridstore.Bounds
	IDs []AreaID
	// count is the highest id in use.
	count AreaID
}

// NewRegionGrid wraps ids as a RegionGrid of the given bounds.
// It returns an error when len(ids) does not match the bounds.
func NewRegionGrid(b gridstore.Bounds, ids []AreaID) (*RegionGrid, error) {
	if len(ids) != b.Len() {
		return nil, fmt.Errorf("%w: %d ids for %dx%d map", gridstore.ErrGridSize, len(ids), b.Width, b.Height)
	}
	rg := &RegionGrid{Bounds: b, IDs: append([]AreaID(nil), ids...)}
	for _, id := range rg.IDs {
		if id > rg.count {
			rg.count = id
		}
	}
	return rg, nil
}

// Validate checks that every id from 1 to Count owns at least one tile, as
// Segment guarantees. Grids from NewRegionGrid are not checked on
// construction.
func (rg *RegionGrid) Validate() error {
	seen := make([]bool, int(rg.count)+1)
	for _, id := range rg.IDs {
		seen[id] = true
	}
	for id := 1; id < len(seen); id++ {
		if !seen[id] {
			return fmt.Errorf("%w: %d of %d", ErrRegionGap, id, rg.count)
		}
	}
	return nil
}

// At returns the region of loc. It panics when loc is outside the map.
func (rg *RegionGrid) At(loc gridstore.Location) AreaID {
	if !rg.InBounds(loc) {
		panic(fmt.Sprintf("segment: location (%d,%d) outside %dx%d map", loc.X, loc.Y, rg.Width, rg.Height))
	}
	return rg.IDs[rg.Index(loc)]
}

// Count returns the number of regions; ids run from 1 to Count.
func (rg *RegionGrid) Count() int {
	return int(rg.count)
}

// Members returns the tiles of every region in row-major order.
// The result is indexed by AreaID; entry 0 is always empty.
// Complexity: O(W×H).
func (rg *RegionGrid) Members() [][]gridstore.Location {
	members := make([][]gridstore.Location, int(rg.count)+1)
	for i, id := range rg.IDs {
		if id != 0 {
			members[id] = append(members[id], rg.Coordinate(i))
		}
	}
	return members
}

// Pair is an unordered region adjacency stored as (min, max).
type Pair struct {
	A, B AreaID
}

// MakePair orders a and b into a Pair.
func MakePair(a, b AreaID) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Other returns the id of p that is not id.
func (p Pair) Other(id AreaID) AreaID {
	if p.A == id {
		return p.B
	}
	return p.A
}
