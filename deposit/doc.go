// Package deposit groups neutral resources into per-region deposits and
// answers the ownership questions expansion logic asks about them.
//
// Cluster partitions resources by the region of their tile, then grows each
// deposit by chain linkage: a unit joins when it is closer than the radius to
// any unit already in the deposit. The center of a deposit is the truncated
// mean of its member positions.
//
// Controlled, NextExpansion and FreeGeyser relate deposits to the player's
// main bases.
package deposit
