package areagraph

import "github.com/katalvlaran/terrain/segment"

// visitation states of the elevation sort
const (
	white = iota // not visited
	gray         // on the current path
	black        // finished
)

// elevationSorter holds the DFS state of ElevationOrder.
type elevationSorter struct {
	up    [][]segment.AreaID // Bottom→Top successors per Mesa
	state []int
	order []segment.AreaID
}

// ElevationOrder returns every Mesa such that for each Ramp, its Bottom comes
// before its Top. Mesas are visited in id order, so the result is stable.
//
// Ramps always point from the lower (Height, ID) Mesa to the higher one, so
// the directed graph is acyclic.
// Complexity: O(V + E).
func (gr *Graph) ElevationOrder() []segment.AreaID {
	s := &elevationSorter{
		up:    make([][]segment.AreaID, len(gr.areas)),
		state: make([]int, len(gr.areas)),
	}
	for _, r := range gr.Ramps() {
		s.up[r.Bottom] = append(s.up[r.Bottom], r.Top)
	}

	mesas := gr.Mesas()
	s.order = make([]segment.AreaID, 0, len(mesas))
	for _, m := range mesas {
		if s.state[m.ID] == white {
			s.visit(m.ID)
		}
	}
	// reverse post-order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order
}

func (s *elevationSorter) visit(id segment.AreaID) {
	s.state[id] = gray
	for _, next := range s.up[id] {
		if s.state[next] == white {
			s.visit(next)
		}
	}
	s.state[id] = black
	s.order = append(s.order, id)
}

// Hops returns the breadth-first hop count from from to every area reachable
// over graph edges, including from itself at 0. Unknown ids yield nil.
// Complexity: O(V + E).
func (gr *Graph) Hops(from segment.AreaID) map[segment.AreaID]int {
	if _, ok := gr.Area(from); !ok {
		return nil
	}
	depth := map[segment.AreaID]int{from: 0}
	queue := []segment.AreaID{from}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, n := range gr.areas[id].Neighbors {
			if _, seen := depth[n]; !seen {
				depth[n] = depth[id] + 1
				queue = append(queue, n)
			}
		}
	}
	return depth
}
