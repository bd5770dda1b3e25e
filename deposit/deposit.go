package deposit

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/terrain/areagraph"
	"github.com/katalvlaran/terrain/gridstore"
	"github.com/katalvlaran/terrain/monitoring"
	"github.com/katalvlaran/terrain/segment"
	"github.com/katalvlaran/terrain/snapshot"
)

// DefaultRadius is the linkage distance between units of one deposit.
const DefaultRadius = 5.0

// Deposit is a cluster of resources inside one area.
type Deposit struct {
	Area      segment.AreaID
	Center    gridstore.Location
	Resources []snapshot.Unit
}

// Cluster groups the resources among units into deposits.
//
// Units are grouped by region in order of first appearance. Inside a region a
// deposit starts at the first unclustered unit and absorbs every remaining
// unit within radius (strictly less) of any member until nothing changes.
// Non-resource units are ignored; resources on blocked, unreached or
// off-map tiles are skipped and logged.
// Complexity: O(Σ n_r²) for n_r resources in region r.
func Cluster(units []snapshot.Unit, gr *areagraph.Graph, radius float64) []Deposit {
	rg := gr.Regions()
	var order []segment.AreaID
	groups := make(map[segment.AreaID][]snapshot.Unit)
	for _, u := range units {
		if !u.IsResource() {
			continue
		}
		loc := gridstore.LocationOf(u.Pos)
		if !rg.InBounds(loc) || rg.At(loc) == 0 {
			monitoring.Logf("deposit: resource %d at (%.1f,%.1f) is outside every area", u.Tag, u.Pos.X, u.Pos.Y)
			continue
		}
		id := rg.At(loc)
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], u)
	}

	var out []Deposit
	for _, id := range order {
		if _, ok := gr.Area(id); !ok {
			panic(fmt.Sprintf("deposit: region %d missing from area graph", id))
		}
		for _, members := range chains(groups[id], radius) {
			out = append(out, newDeposit(id, members))
		}
	}
	return out
}

// chains splits group into single-linkage clusters, preserving input order
// within each cluster.
func chains(group []snapshot.Unit, radius float64) [][]snapshot.Unit {
	taken := make([]bool, len(group))
	var out [][]snapshot.Unit
	for seed := range group {
		if taken[seed] {
			continue
		}
		taken[seed] = true
		idx := []int{seed}
		for qi := 0; qi < len(idx); qi++ {
			for j := range group {
				if !taken[j] && group[idx[qi]].Distance(group[j].Pos) < radius {
					taken[j] = true
					idx = append(idx, j)
				}
			}
		}
		members := make([]snapshot.Unit, len(idx))
		for i, k := range idx {
			members[i] = group[k]
		}
		out = append(out, members)
	}
	return out
}

// newDeposit builds a Deposit; it panics on an empty member list.
func newDeposit(id segment.AreaID, members []snapshot.Unit) Deposit {
	if len(members) == 0 {
		panic(fmt.Sprintf("deposit: empty deposit in region %d", id))
	}
	xs := make([]float64, len(members))
	ys := make([]float64, len(members))
	for i, u := range members {
		xs[i], ys[i] = u.Pos.X, u.Pos.Y
	}
	return Deposit{
		Area:      id,
		Center:    gridstore.Location{X: int(stat.Mean(xs, nil)), Y: int(stat.Mean(ys, nil))},
		Resources: members,
	}
}

// Geysers returns the vespene geysers of d.
func (d Deposit) Geysers() []snapshot.Unit {
	var out []snapshot.Unit
	for _, u := range d.Resources {
		if u.IsVespeneGeyser() {
			out = append(out, u)
		}
	}
	return out
}
