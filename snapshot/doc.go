// Package snapshot models the data a game engine client hands to the terrain
// analysis: the static map information available at game start and the
// per-step frame of visible units.
//
// What:
//
//   - Start: map dimensions plus the placement, pathing and height grids
//     (one byte per tile, row-major) and the known start locations.
//   - Frame: the units visible in one observation and an optional creep grid.
//   - TypeTable: per unit-type metadata (structure footprint, main base and
//     resource flags). It satisfies gridstore.SizeLookup.
//   - File: a JSON document bundling all three, used by cmd/terrain and tests.
//
// Why:
//
//   - The engine session protocol is owned elsewhere. Keeping the boundary as
//     plain data lets the analysis run offline against recorded snapshots.
//
// Errors:
//
//   - ErrMapSize: width or height is not positive.
//   - ErrGridSize: a grid length differs from width×height.
package snapshot
