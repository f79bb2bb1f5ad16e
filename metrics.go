package coilprox

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting per-stage filter
// metrics. Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordBucketize is called after all clouds have been hashed onto the
	// grid. clouds is the number of clouds processed, duration the total time
	// taken by the stage.
	RecordBucketize(clouds int, duration time.Duration)

	// RecordBroadPhase is called after the broad phase. candidates is the
	// number of enumerated pairs tested, survivors the number retained.
	RecordBroadPhase(candidates, survivors int, duration time.Duration)

	// RecordNarrowPhase is called after the narrow phase. candidates is the
	// number of broad-phase survivors tested, survivors the number confirmed.
	RecordNarrowPhase(candidates, survivors int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBucketize(int, time.Duration)        {}
func (NoopMetricsCollector) RecordBroadPhase(int, int, time.Duration)  {}
func (NoopMetricsCollector) RecordNarrowPhase(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BucketizeCount      atomic.Int64
	BucketizeClouds     atomic.Int64
	BucketizeTotalNanos atomic.Int64

	BroadPhaseCandidates atomic.Int64
	BroadPhaseSurvivors  atomic.Int64
	BroadPhaseTotalNanos atomic.Int64

	NarrowPhaseCandidates atomic.Int64
	NarrowPhaseSurvivors  atomic.Int64
	NarrowPhaseTotalNanos atomic.Int64
}

// RecordBucketize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBucketize(clouds int, duration time.Duration) {
	b.BucketizeCount.Add(1)
	b.BucketizeClouds.Add(int64(clouds))
	b.BucketizeTotalNanos.Add(duration.Nanoseconds())
}

// RecordBroadPhase implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBroadPhase(candidates, survivors int, duration time.Duration) {
	b.BroadPhaseCandidates.Add(int64(candidates))
	b.BroadPhaseSurvivors.Add(int64(survivors))
	b.BroadPhaseTotalNanos.Add(duration.Nanoseconds())
}

// RecordNarrowPhase implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNarrowPhase(candidates, survivors int, duration time.Duration) {
	b.NarrowPhaseCandidates.Add(int64(candidates))
	b.NarrowPhaseSurvivors.Add(int64(survivors))
	b.NarrowPhaseTotalNanos.Add(duration.Nanoseconds())
}
