package gridstore

import (
	"math"

	"github.com/katalvlaran/terrain/snapshot"
)

// UpdateOption configures an overlay rebuild.
type UpdateOption func(*updateOptions)

type updateOptions struct {
	resourcePaddingRadius int
}

// DefaultResourcePaddingRadius is the Chebyshev radius of resource padding.
const DefaultResourcePaddingRadius = 3

// WithResourcePaddingRadius sets the Chebyshev radius marked around each resource.
// Negative values are ignored.
func WithResourcePaddingRadius(r int) UpdateOption {
	return func(o *updateOptions) {
		if r >= 0 {
			o.resourcePaddingRadius = r
		}
	}
}

// Update rebuilds every overlay from frame and returns a new Grid that shares
// the base grids of g. g itself is left untouched.
//
// Behavior:
//  1. Each unit whose type has a structure size gets a footprint whose origin
//     is round(pos - size/2). Footprint tiles are occupied; the footprint and
//     its 8-neighborhood ring become structure padding.
//  2. Each neutral resource marks all tiles within the resource padding radius
//     (Chebyshev) of its tile. A resource type with a structure size also
//     gets the footprint of step 1.
//  3. Creep is copied from the frame when present.
//
// Tiles of a footprint that fall outside the map are ignored.
// Complexity: O(W×H + Σ footprint area + R·(2r+1)²).
func (g *Grid) Update(frame snapshot.Frame, sizes SizeLookup, opts ...UpdateOption) *Grid {
	o := updateOptions{resourcePaddingRadius: DefaultResourcePaddingRadius}
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	next := &Grid{
		Bounds:           g.Bounds,
		placement:        g.placement,
		pathing:          g.pathing,
		height:           g.height,
		padding:          g.padding,
		occupied:         make([]bool, n),
		structurePadding: make([]bool, n),
		resourcePadding:  make([]bool, n),
	}
	if len(frame.Creep) == n {
		next.creep = append([]byte(nil), frame.Creep...)
	}

	for _, u := range frame.Units {
		if u.IsResource() {
			next.markResource(LocationOf(u.Pos), o.resourcePaddingRadius)
		}
		if sizes == nil {
			continue
		}
		size, ok := sizes.StructureSize(u.Type)
		if !ok {
			continue
		}
		next.markStructure(FootprintOrigin(u.Pos, size), size)
	}

	return next
}

// FootprintOrigin returns the lower-left tile of a size footprint centered on pos.
func FootprintOrigin(pos snapshot.Point, size Size) Location {
	return Location{
		X: int(math.Round(pos.X - float64(size.X)*0.5)),
		Y: int(math.Round(pos.Y - float64(size.Y)*0.5)),
	}
}

func (g *Grid) markStructure(origin Location, size Size) {
	for y := origin.Y; y < origin.Y+size.Y; y++ {
		for x := origin.X; x < origin.X+size.X; x++ {
			loc := Location{X: x, Y: y}
			if !g.InBounds(loc) {
				continue
			}
			g.occupied[g.Index(loc)] = true
			g.markAdjacent(g.structurePadding, loc)
		}
	}
}

func (g *Grid) markResource(center Location, r int) {
	for y := center.Y - r; y <= center.Y+r; y++ {
		for x := center.X - r; x <= center.X+r; x++ {
			loc := Location{X: x, Y: y}
			if g.InBounds(loc) {
				g.resourcePadding[g.Index(loc)] = true
			}
		}
	}
}
