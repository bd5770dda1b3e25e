// Package store persists analysis results in a SQLite database.
//
// Region grids are cached per map key (the terrain fingerprint) so repeated
// games on the same map skip segmentation, and every analysis run is logged
// with its summary counts. The schema is managed with embedded golang-migrate
// migrations applied by Open.
package store
