// Package terrain analyzes tile maps of real-time strategy games: where the
// plateaus and ramps are, where resources cluster and where a building fits.
//
// The work is split into small packages, leaves first:
//
//	snapshot/  engine data: start grids, frames of units, type metadata
//	gridstore/ immutable base grids, padding and per-frame overlays
//	segment/   flood-fill segmentation into regions and region adjacency
//	areagraph/ Mesa / Ramp / Edge classification and the area graph
//	deposit/   resource clustering and base control
//	placement/ multi-source BFS for the nearest feasible footprint
//	analyzer/  the pipeline tying the above together per game
//	store/     SQLite cache of region grids and a log of analysis runs
//	heatmap/   PNG rendering of regions and deposits
//
// Quick ASCII example (digits are buildable heights, '.' is a ramp):
//
//	1 1 1 . 3 3 3
//	1 1 1 . 3 3 3
//
// segments into two Mesas joined by one Ramp with Bottom 1 and Top 3.
//
//	go run ./cmd/terrain -snapshot map.json -plot regions.png
package terrain
