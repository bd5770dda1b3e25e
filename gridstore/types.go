package gridstore

import (
	"errors"
	"math"

	"github.com/katalvlaran/terrain/snapshot"
)

// Sentinel errors for gridstore construction.
var (
	// ErrEmptyGrid indicates non-positive map dimensions.
	ErrEmptyGrid = errors.New("gridstore: grid must have at least one row and one column")
	// ErrGridSize indicates a base grid whose length differs from Width×Height.
	ErrGridSize = errors.New("gridstore: grid length does not match dimensions")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets for c in a fixed order.
// The slice is shared; callers must not modify it.
func Offsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Location is an integer tile coordinate.
type Location struct {
	X, Y int
}

// Add returns l shifted by (dx, dy).
func (l Location) Add(dx, dy int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy}
}

// Point returns the continuous position of the tile's lower-left corner.
func (l Location) Point() snapshot.Point {
	return snapshot.Point{X: float64(l.X), Y: float64(l.Y)}
}

// LocationOf returns the tile containing p.
func LocationOf(p snapshot.Point) Location {
	return Location{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Size is a footprint in tiles.
type Size = snapshot.Size

// Bounds are the dimensions of a grid and the row-major index arithmetic over them.
type Bounds struct {
	Width, Height int
}

// InBounds reports whether loc lies within the grid boundaries.
// Complexity: O(1).
func (b Bounds) InBounds(loc Location) bool {
	return loc.X >= 0 && loc.X < b.Width && loc.Y >= 0 && loc.Y < b.Height
}

// Index maps loc to a row-major index: y*Width + x.
// Complexity: O(1).
func (b Bounds) Index(loc Location) int {
	return loc.Y*b.Width + loc.X
}

// Coordinate converts a row-major index back to a Location.
// Complexity: O(1).
func (b Bounds) Coordinate(idx int) Location {
	return Location{X: idx % b.Width, Y: idx / b.Width}
}

// Len returns the number of tiles.
func (b Bounds) Len() int {
	return b.Width * b.Height
}

// SizeLookup resolves the footprint of structure types.
// It returns false for unit types that are not structures.
type SizeLookup interface {
	StructureSize(t snapshot.UnitType) (Size, bool)
}

// BuildOptions selects the extra constraints of a footprint check.
// The zero value checks buildability, occupancy and padding.
type BuildOptions struct {
	// RequireCreep demands creep under every footprint tile.
	RequireCreep bool
	// HasAddOn also checks the 2×2 add-on footprint right of the building.
	HasAddOn bool
	// IncludeResourcePadding keeps the footprint out of resource padding.
	IncludeResourcePadding bool
	// IgnorePadding skips the static and structure padding overlays.
	IgnorePadding bool
}

// addOnSize is the footprint of a production add-on.
var addOnSize = Size{X: 2, Y: 2}
