package gridstore

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/katalvlaran/terrain/snapshot"
)

// Grid holds the base terrain grids of one map and the overlays of one update.
// It is immutable once built; Update returns a new Grid.
type Grid struct {
	Bounds

	// base grids, shared between updates
	placement []byte
	pathing   []byte
	height    []byte
	padding   []bool

	// per-update overlays
	occupied         []bool
	structurePadding []bool
	resourcePadding  []bool
	creep            []byte
}

// New constructs a Grid from row-major base grids of width×height bytes.
// It deep-copies the inputs to ensure immutability and computes static padding.
// Returns ErrEmptyGrid for non-positive dimensions and ErrGridSize on a length mismatch.
// Complexity: O(W×H) time and memory.
func New(width, height int, placement, pathing, terrain []byte) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	n := width * height
	if len(placement) != n || len(pathing) != n || len(terrain) != n {
		return nil, fmt.Errorf("%w: want %d bytes, got placement=%d pathing=%d height=%d",
			ErrGridSize, n, len(placement), len(pathing), len(terrain))
	}
	g := &Grid{
		Bounds:           Bounds{Width: width, Height: height},
		placement:        append([]byte(nil), placement...),
		pathing:          append([]byte(nil), pathing...),
		height:           append([]byte(nil), terrain...),
		padding:          make([]bool, n),
		occupied:         make([]bool, n),
		structurePadding: make([]bool, n),
		resourcePadding:  make([]bool, n),
	}
	for i, p := range g.placement {
		if p == 0 {
			g.markAdjacent(g.padding, g.Coordinate(i))
		}
	}

	return g, nil
}

// FromStart builds a Grid from the engine's start data.
func FromStart(s snapshot.Start) (*Grid, error) {
	return New(s.Width, s.Height, s.Placement, s.Pathing, s.Terrain)
}

// mustIndex returns the row-major index of loc, panicking when it is off the map.
func (g *Grid) mustIndex(loc Location) int {
	if !g.InBounds(loc) {
		panic(fmt.Sprintf("gridstore: location (%d,%d) outside %dx%d map", loc.X, loc.Y, g.Width, g.Bounds.Height))
	}
	return g.Index(loc)
}

// CanTraverse reports whether ground units can move through loc.
// The pathing grid uses 0 for traversable tiles.
func (g *Grid) CanTraverse(loc Location) bool {
	return g.pathing[g.mustIndex(loc)] == 0
}

// CanBuild reports whether loc is buildable terrain.
func (g *Grid) CanBuild(loc Location) bool {
	return g.placement[g.mustIndex(loc)] != 0
}

// Height returns the terrain elevation at loc.
func (g *Grid) Height(loc Location) byte {
	return g.height[g.mustIndex(loc)]
}

// Occupied reports whether a structure footprint covers loc.
func (g *Grid) Occupied(loc Location) bool {
	return g.occupied[g.mustIndex(loc)]
}

// Padded reports whether loc lies in the static or structure padding.
func (g *Grid) Padded(loc Location) bool {
	i := g.mustIndex(loc)
	return g.padding[i] || g.structurePadding[i]
}

// ResourcePadded reports whether loc lies in the resource padding.
func (g *Grid) ResourcePadded(loc Location) bool {
	return g.resourcePadding[g.mustIndex(loc)]
}

// HasCreep reports whether loc is covered by creep. Without a creep grid it is false.
func (g *Grid) HasCreep(loc Location) bool {
	i := g.mustIndex(loc)
	return g.creep != nil && g.creep[i] != 0
}

// Fingerprint identifies the base terrain: equal maps give equal fingerprints.
// It is the hex SHA-256 of the dimensions and the three base grids.
func (g *Grid) Fingerprint() string {
	h := sha256.New()
	var dims [16]byte
	binary.BigEndian.PutUint64(dims[:8], uint64(g.Width))
	binary.BigEndian.PutUint64(dims[8:], uint64(g.Bounds.Height))
	h.Write(dims[:])
	h.Write(g.placement)
	h.Write(g.pathing)
	h.Write(g.height)
	return hex.EncodeToString(h.Sum(nil))
}

// markAdjacent sets target for loc and each in-bounds tile of its 8-neighborhood.
func (g *Grid) markAdjacent(target []bool, loc Location) {
	target[g.Index(loc)] = true
	for _, d := range Offsets(Conn8) {
		n := loc.Add(d[0], d[1])
		if g.InBounds(n) {
			target[g.Index(n)] = true
		}
	}
}
