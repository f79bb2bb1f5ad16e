// Package grid implements the spatial-hashing stage of the proximity filter.
//
// Points are bucketed into a uniform grid whose cell size equals the
// proximity threshold. Two clouds are broad-phase candidates iff the dilated
// cell set of one intersects the occupied cell set of the other: two points
// whose owning cells differ by more than one cell along any axis are farther
// apart than the threshold along that axis, so cell adjacency is a necessary
// condition for closeness. It is not a sufficient one; the intersection test
// deliberately over-reports and the narrow phase resolves the remainder.
package grid
