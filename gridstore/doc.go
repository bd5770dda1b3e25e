// Package gridstore owns the terrain grids of one map and answers the tile
// queries every other analysis stage is built on.
//
// What:
//
//   - Grid wraps the three immutable base grids (placement, pathing, height),
//     one byte per tile in row-major order (index = y*Width + x).
//   - Static padding: every unbuildable tile and its 8-neighborhood, computed
//     once at construction.
//   - Per-update overlays: structure occupancy, structure padding (footprint
//     plus its 8-neighborhood ring), resource padding and creep. Update never
//     mutates; it returns a fresh Grid sharing the base grids.
//   - Queries: CanTraverse, CanBuild, Height, and CanBuildFootprint for a
//     rectangular footprint with BuildOptions.
//
// Why:
//
//   - Placement decisions must avoid walling off ramps and resource lines.
//     The padding overlays are a cheap approximation of "keep one tile clear".
//
// Connectivity conventions:
//
//   - Padding uses Conn8 (a tile pads all eight neighbors).
//   - Segmentation and neighbor detection use Conn4 (see package segment).
//
// Complexity:
//
//   - New:               O(W×H) time and memory.
//   - Update:            O(W×H + Σ footprint) time, O(W×H) memory.
//   - CanBuildFootprint: O(size.X×size.Y).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions.
//   - ErrGridSize:  a base grid length differs from Width×Height.
//
// Single-tile queries outside the map panic: an out-of-bounds tile is a
// caller bug, never a terrain property.
package gridstore
