package areagraph

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/terrain/gridstore"
	"github.com/katalvlaran/terrain/segment"
)

// Graph is the immutable area graph of one map.
type Graph struct {
	regions *segment.RegionGrid
	areas   []*Area // indexed by id; areas[0] is nil
}

// Build classifies every region of rg and links the resulting areas.
// grid supplies buildability and elevation, ns the region adjacency.
// It panics if a region id in 1..rg.Count() has no tiles.
// Complexity: O(W×H + P).
func Build(grid *gridstore.Grid, rg *segment.RegionGrid, ns *segment.NeighborSet) *Graph {
	members := rg.Members()
	gr := &Graph{regions: rg, areas: make([]*Area, len(members))}

	// Pass 1: centers and Mesas.
	for id := 1; id < len(members); id++ {
		tiles := members[id]
		if len(tiles) == 0 {
			panic(fmt.Sprintf("areagraph: region %d has no tiles", id))
		}
		a := &Area{
			ID:     segment.AreaID(id),
			Tiles:  tiles,
			Center: center(rg, segment.AreaID(id), tiles),
		}
		if grid.CanBuild(tiles[0]) {
			a.Kind = KindMesa
			a.Height = grid.Height(tiles[0])
		}
		gr.areas[id] = a
	}

	// Pass 2: Ramps and Edges against resolved Mesas.
	for _, a := range gr.areas[1:] {
		if a.IsMesa() {
			continue
		}
		var mesas []segment.AreaID
		for _, n := range ns.Of(a.ID) {
			if m, ok := gr.Area(n); ok && m.IsMesa() {
				mesas = append(mesas, n)
			}
		}
		if len(mesas) == 2 {
			lo, hi := gr.areas[mesas[0]], gr.areas[mesas[1]]
			if hi.Height < lo.Height {
				lo, hi = hi, lo
			}
			a.Kind = KindRamp
			a.Bottom, a.Top = lo.ID, hi.ID
		} else {
			a.Kind = KindEdge
			a.Mesas = mesas
		}
		for _, m := range mesas {
			gr.link(a.ID, m)
		}
	}

	// Pass 3: direct Mesa-Mesa links.
	for _, p := range ns.Pairs() {
		if gr.areas[p.A].IsMesa() && gr.areas[p.B].IsMesa() {
			gr.link(p.A, p.B)
		}
	}

	for _, a := range gr.areas[1:] {
		sortIDs(a.Neighbors)
	}

	return gr
}

// link records a bidirectional edge between a and b once.
func (gr *Graph) link(a, b segment.AreaID) {
	x, y := gr.areas[a], gr.areas[b]
	for _, n := range x.Neighbors {
		if n == b {
			return
		}
	}
	x.Neighbors = append(x.Neighbors, b)
	y.Neighbors = append(y.Neighbors, a)
}

// center returns the rounded mean of tiles when it belongs to the region,
// otherwise the member closest to the mean. Ties keep the earliest tile.
func center(rg *segment.RegionGrid, id segment.AreaID, tiles []gridstore.Location) gridstore.Location {
	xs := make([]float64, len(tiles))
	ys := make([]float64, len(tiles))
	for i, t := range tiles {
		xs[i], ys[i] = float64(t.X), float64(t.Y)
	}
	mx, my := stat.Mean(xs, nil), stat.Mean(ys, nil)
	c := gridstore.Location{X: int(math.Round(mx)), Y: int(math.Round(my))}
	if rg.InBounds(c) && rg.At(c) == id {
		return c
	}

	mean := []float64{mx, my}
	best, bestDist := tiles[0], math.Inf(1)
	for i, t := range tiles {
		if d := floats.Distance([]float64{xs[i], ys[i]}, mean, 2); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

func sortIDs(ids []segment.AreaID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
