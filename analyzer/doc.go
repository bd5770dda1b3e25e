// Package analyzer runs the terrain pipeline for one game.
//
// Initial builds everything from the start data and the first frame:
//
//	gridstore.Grid → segment.Segment → segment.Neighbors → areagraph.Build
//	               → deposit.Cluster
//
// Update reuses the region grid and area graph of a previous MapData and only
// rebuilds the grid overlays and the deposits. The area graph is never
// recomputed after Initial.
//
// MapData.Place turns a structure type into a placement search: the type
// table decides the footprint and BuildOptions, main bases (or the next
// expansion, for town halls) supply the start tiles.
//
// An optional Cache stores region grids per map key, and an optional
// Recorder logs one entry per Initial call. store.DB implements both.
package analyzer
