// Package areagraph classifies segmented regions into Mesas, Ramps and Edges
// and wires them into an immutable adjacency graph.
//
// What:
//
//   - Mesa: buildable region with the elevation of its first tile.
//   - Ramp: non-buildable region touching exactly two Mesas, ordered
//     Bottom (lower) and Top (higher).
//   - Edge: any other non-buildable region; it keeps whatever Mesas it touches.
//   - Graph owns every Area in an arena indexed by AreaID. Neighbor lists hold
//     ids, never pointers, so the graph has no ownership cycles.
//
// Build runs in passes:
//
//  1. Centers and Mesas.
//  2. Ramps and Edges, each Mesa receiving a back-reference.
//  3. Direct Mesa-Mesa links for every neighboring pair of Mesas.
//
// Equal elevation:
//
//   - A Ramp between two Mesas of equal height orders them by (Height, ID):
//     the lower id becomes Bottom.
//
// Queries:
//
//   - ElevationOrder: Mesas in topological order over Bottom→Top ramps.
//   - Hops:           breadth-first hop count from one area to all others.
//
// Complexity:
//
//   - Build:          O(W×H + P) for P neighbor pairs.
//   - ElevationOrder: O(V + E).
//   - Hops:           O(V + E).
//
// A region without tiles means segmentation broke its contract; Build panics.
package areagraph
