package segment

import (
	"fmt"

	"github.com/katalvlaran/terrain/gridstore"
	"github.com/katalvlaran/terrain/monitoring"
)

// filler holds the mutable flood-fill state of one Segment call.
type filler struct {
	grid     *gridstore.Grid
	ids      []AreaID
	boundary []int
	pending  []bool
	frontier []int
	next     int
}

// Segment partitions every tile reachable from seeds into regions.
//
// Steps:
//  1. Every in-bounds seed on admitted ground (buildable or traversable) joins
//     the boundary queue in the given order; others are skipped.
//  2. The boundary queue is popped; an unassigned tile gets a fresh id and is
//     flood-filled over 4-adjacent admitted tiles of the same buildability.
//  3. Admitted neighbors of differing buildability are deferred into the
//     boundary queue and later start regions of their own.
//
// Returns ErrSeedOutOfBounds, ErrNoSeeds or ErrTooManyRegions.
// Complexity: O(W×H) time and memory.
func Segment(g *gridstore.Grid, seeds []gridstore.Location) (*RegionGrid, error) {
	n := g.Len()
	f := &filler{
		grid:    g,
		ids:     make([]AreaID, n),
		pending: make([]bool, n),
	}

	for _, s := range seeds {
		if !g.InBounds(s) {
			return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d map", ErrSeedOutOfBounds, s.X, s.Y, g.Width, g.Bounds.Height)
		}
		if !f.admitted(s) {
			monitoring.Logf("segment: skipping seed (%d,%d) on blocked ground", s.X, s.Y)
			continue
		}
		f.push(g.Index(s))
	}
	if len(f.boundary) == 0 {
		return nil, ErrNoSeeds
	}

	for len(f.boundary) > 0 {
		i := f.boundary[0]
		f.boundary = f.boundary[1:]
		if f.ids[i] != 0 {
			continue
		}
		if f.next == MaxRegions {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyRegions, MaxRegions)
		}
		f.next++
		f.fill(i, AreaID(f.next))
	}

	return &RegionGrid{Bounds: g.Bounds, IDs: f.ids, count: AreaID(f.next)}, nil
}

// admitted reports whether loc can belong to any region.
func (f *filler) admitted(loc gridstore.Location) bool {
	return f.grid.CanBuild(loc) || f.grid.CanTraverse(loc)
}

// push queues i on the boundary once.
func (f *filler) push(i int) {
	if f.pending[i] {
		return
	}
	f.pending[i] = true
	f.boundary = append(f.boundary, i)
}

// fill assigns id to the region containing start.
func (f *filler) fill(start int, id AreaID) {
	g := f.grid
	buildable := g.CanBuild(g.Coordinate(start))
	f.ids[start] = id
	f.frontier = append(f.frontier[:0], start)

	for qi := 0; qi < len(f.frontier); qi++ {
		u := g.Coordinate(f.frontier[qi])
		for _, d := range gridstore.Offsets(gridstore.Conn4) {
			v := u.Add(d[0], d[1])
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if f.ids[vi] != 0 || !f.admitted(v) {
				continue
			}
			if g.CanBuild(v) == buildable {
				f.ids[vi] = id
				f.frontier = append(f.frontier, vi)
			} else {
				f.push(vi)
			}
		}
	}
}
