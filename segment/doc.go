// Package segment partitions the reachable terrain of a map into regions and
// finds which regions touch.
//
// What:
//
//   - Segment flood-fills from the start locations. A region is a maximal
//     4-connected set of tiles that share the same buildability; crossing from
//     buildable to non-buildable ground (or back) starts a new region.
//   - RegionGrid stores one AreaID per tile; 0 marks blocked or unreached tiles.
//   - Neighbors scans the RegionGrid for 4-adjacent tiles with different
//     non-zero ids and returns the deduplicated NeighborSet of (min,max) pairs.
//
// Why:
//
//   - Regions are the nodes of the area graph (Mesas, Ramps, Edges) and the
//     keys that group resource deposits.
//   - Diagonal contact is ignored: units cannot walk between two regions that
//     only share a corner.
//
// Determinism:
//
//   - Seeds are processed in the order given; both the pending boundary and the
//     fill frontier are FIFO queues, so the same grid and seeds always yield
//     the same ids.
//
// Complexity:
//
//   - Segment:   O(W×H) time and memory.
//   - Neighbors: O(W×H) time, O(P) memory for P distinct pairs.
//
// Errors:
//
//   - ErrSeedOutOfBounds: a seed lies outside the map.
//   - ErrNoSeeds:         no seed lies on traversable or buildable ground.
//   - ErrTooManyRegions:  more than 255 regions would be required.
//
// Terrain not reachable from any seed ("islands") keeps id 0.
package segment
