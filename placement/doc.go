// Package placement finds the nearest tile that satisfies a feasibility
// predicate, searching breadth-first from several start tiles at once.
//
// What:
//
//   - Search runs a multi-source BFS over the tiles a traversal predicate
//     admits. Start tiles are depth 0 and are evaluated even when the
//     traversal predicate rejects them; neighbors are only enqueued when
//     admitted.
//   - Every dequeued tile is tested against the feasibility predicate before
//     its neighbors are expanded; the first match is returned.
//   - Footprint adapts gridstore.Grid.CanBuildFootprint into a feasibility
//     predicate for a structure of a given size.
//
// Guarantees:
//
//   - The result is reachable from a start tile through admitted tiles and has
//     the minimum BFS depth among feasible tiles; ties go to the tile
//     discovered first.
//   - When nothing matches, Search returns ErrNotFound after visiting every
//     reachable tile exactly once.
//
// Options:
//
//   - WithConnectivity: Conn4 (default) or Conn8 expansion.
//   - WithMaxDepth:     stop expanding beyond a depth; 0 means no limit.
//   - WithOnVisit:      hook called for each dequeued tile.
//
// Complexity: O(W×H×d) time, O(W×H) memory, d = 4 or 8, plus the cost of the
// predicates.
package placement
