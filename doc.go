// Package coilprox decides which pairs of discretized coils pass close to
// each other. It is the proximity stage of a stellarator coil-optimization
// loop: given a set of point clouds sampled from coil geometry,
// FindClosePairs returns the pairs of clouds that have two points less than a
// threshold apart.
//
// The filter runs in three stages, each parallel across its units of work:
//
//  1. Bucketer: every cloud is hashed onto a uniform grid whose cell size
//     equals the threshold (package grid).
//  2. Broad phase: a pair survives iff the dilated cell set of one cloud
//     intersects the occupied cell set of the other. This is a conservative
//     necessary condition: it may over-report, never under-report.
//  3. Narrow phase: an exact pairwise squared-distance scan over the raw
//     coordinates confirms each survivor (package geom).
//
// # Quick Start
//
//	pairs, err := coilprox.FindClosePairs(ctx, clouds, 0.1, numBaseCurves)
//	if err != nil {
//	    return err
//	}
//	for _, p := range pairs {
//	    // clouds[p.I] and clouds[p.J] have points closer than 0.1
//	}
//
// # Base curves
//
// Only pairs (i, j) with j < numBaseCurves are considered: every cloud is
// checked against the base set (typically the coils of one field period), but
// two non-base clouds are never checked against each other.
//
// The order of the returned pairs is unspecified; callers must treat the
// result as a set.
package coilprox
