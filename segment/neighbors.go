package segment

import "sort"

// NeighborSet is the deduplicated set of adjacent region pairs.
type NeighborSet struct {
	pairs map[Pair]struct{}
}

// Neighbors records every pair of distinct non-zero ids that touch along a
// vertical or horizontal tile edge. Each pair is stored once as (min, max).
// Complexity: O(W×H).
func Neighbors(rg *RegionGrid) *NeighborSet {
	s := &NeighborSet{pairs: make(map[Pair]struct{})}
	w, h := rg.Width, rg.Height

	// vertical contacts
	for y := 0; y+1 < h; y++ {
		for x := 0; x < w; x++ {
			s.add(rg.IDs[y*w+x], rg.IDs[(y+1)*w+x])
		}
	}
	// horizontal contacts
	for y := 0; y < h; y++ {
		for x := 0; x+1 < w; x++ {
			s.add(rg.IDs[y*w+x], rg.IDs[y*w+x+1])
		}
	}

	return s
}

func (s *NeighborSet) add(a, b AreaID) {
	if a == 0 || b == 0 || a == b {
		return
	}
	s.pairs[MakePair(a, b)] = struct{}{}
}

// Len returns the number of distinct pairs.
func (s *NeighborSet) Len() int {
	return len(s.pairs)
}

// Has reports whether a and b touch, in either order.
func (s *NeighborSet) Has(a, b AreaID) bool {
	_, ok := s.pairs[MakePair(a, b)]
	return ok
}

// Pairs returns all pairs sorted by (A, B).
func (s *NeighborSet) Pairs() []Pair {
	out := make([]Pair, 0, len(s.pairs))
	for p := range s.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// Of returns the sorted ids adjacent to id.
func (s *NeighborSet) Of(id AreaID) []AreaID {
	var out []AreaID
	for _, p := range s.Pairs() {
		if p.A == id || p.B == id {
			out = append(out, p.Other(id))
		}
	}
	return out
}
