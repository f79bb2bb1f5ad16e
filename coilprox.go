package coilprox

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/coilprox/geom"
	"github.com/hupe1980/coilprox/grid"
)

// Pair is an unordered pair of cloud indices with I > J.
type Pair struct {
	I, J int
}

// FindClosePairs returns all pairs of the given point clouds that have two
// points less than threshold apart. Only pairs (i, j) with j < numBaseCurves
// and j < i are considered.
//
// The broad phase is approximate for speed, but the final narrow phase is
// exact: the result contains a pair iff an actual point pair is strictly
// closer than threshold. The order of the returned pairs is unspecified.
//
// threshold must be a positive finite number and numBaseCurves must lie in
// [0, len(clouds)]; violations fail fast before any parallel work starts.
// Cancelling ctx aborts the call with ctx.Err(), never a partial result.
func FindClosePairs(ctx context.Context, clouds []geom.PointCloud, threshold float64, numBaseCurves int, optFns ...Option) ([]Pair, error) {
	if threshold <= 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, &ErrInvalidThreshold{Threshold: threshold}
	}
	if numBaseCurves < 0 || numBaseCurves > len(clouds) {
		return nil, &ErrBaseCurveCount{NumBaseCurves: numBaseCurves, NumClouds: len(clouds)}
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	logger := o.logger.WithThreshold(threshold).WithClouds(len(clouds))

	// Stage 0: bucketize every cloud onto the grid.
	start := time.Now()
	occupied := make([]grid.CellSet, len(clouds))
	dilated := make([]grid.CellSet, len(clouds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for p := range clouds {
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			occupied[p], dilated[p] = grid.Bucketize(clouds[p], threshold)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.LogFilter(ctx, 0, 0, err)
		return nil, err
	}
	o.metrics.RecordBucketize(len(clouds), time.Since(start))

	// Stage 1: broad phase over the enumerated pairs. The dilated set of the
	// higher index is tested against the plain occupied set of the lower.
	enumerated := enumeratePairs(len(clouds), numBaseCurves)
	start = time.Now()
	candidates, err := filterPairs(ctx, o.workers, enumerated, func(p Pair) bool {
		return dilated[p.I].Intersects(occupied[p.J])
	})
	if err != nil {
		logger.LogFilter(ctx, len(enumerated), 0, err)
		return nil, err
	}
	o.metrics.RecordBroadPhase(len(enumerated), len(candidates), time.Since(start))

	// Stage 2: exact narrow phase over the broad-phase survivors.
	thresholdSquared := threshold * threshold
	start = time.Now()
	pairs, err := filterPairs(ctx, o.workers, candidates, func(p Pair) bool {
		return geom.CloserThan(clouds[p.I], clouds[p.J], thresholdSquared)
	})
	if err != nil {
		logger.LogFilter(ctx, len(enumerated), 0, err)
		return nil, err
	}
	o.metrics.RecordNarrowPhase(len(candidates), len(pairs), time.Since(start))

	logger.LogFilter(ctx, len(enumerated), len(pairs), nil)

	return pairs, nil
}

// enumeratePairs generates every pair (i, j) with 0 <= j < i < n and
// j < numBaseCurves: each cloud is tested against every base cloud, but two
// non-base clouds are never tested against each other.
func enumeratePairs(n, numBaseCurves int) []Pair {
	pairs := make([]Pair, 0, n*numBaseCurves)
	for i := 0; i < n; i++ {
		for j := 0; j < i && j < numBaseCurves; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}
	return pairs
}

// filterPairs applies keep to every pair in parallel and returns the retained
// pairs. Each worker writes only its own slot; the survivors are compacted
// after the join barrier, so no lock is needed and membership is
// deterministic.
func filterPairs(ctx context.Context, workers int, pairs []Pair, keep func(Pair) bool) ([]Pair, error) {
	kept := make([]bool, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range pairs {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			kept[k] = keep(pairs[k])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Pair, 0, len(pairs))
	for k, ok := range kept {
		if ok {
			out = append(out, pairs[k])
		}
	}
	return out, nil
}
