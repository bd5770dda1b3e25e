package areagraph

import (
	"github.com/katalvlaran/terrain/gridstore"
	"github.com/katalvlaran/terrain/segment"
)

// Regions returns the region grid the graph was built from.
func (gr *Graph) Regions() *segment.RegionGrid {
	return gr.regions
}

// Len returns the number of areas.
func (gr *Graph) Len() int {
	return len(gr.areas) - 1
}

// Area returns the area with the given id.
func (gr *Graph) Area(id segment.AreaID) (*Area, bool) {
	if id == 0 || int(id) >= len(gr.areas) {
		return nil, false
	}
	return gr.areas[id], true
}

// AreaAt returns the area containing loc, or false for blocked and
// unreached tiles. It panics when loc is outside the map.
func (gr *Graph) AreaAt(loc gridstore.Location) (*Area, bool) {
	return gr.Area(gr.regions.At(loc))
}

// Areas returns all areas in id order.
func (gr *Graph) Areas() []*Area {
	return append([]*Area(nil), gr.areas[1:]...)
}

// Mesas returns the Mesas in id order.
func (gr *Graph) Mesas() []*Area { return gr.filter(KindMesa) }

// Ramps returns the Ramps in id order.
func (gr *Graph) Ramps() []*Area { return gr.filter(KindRamp) }

// Edges returns the Edges in id order.
func (gr *Graph) Edges() []*Area { return gr.filter(KindEdge) }

func (gr *Graph) filter(k Kind) []*Area {
	var out []*Area
	for _, a := range gr.areas[1:] {
		if a.Kind == k {
			out = append(out, a)
		}
	}
	return out
}
