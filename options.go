package coilprox

import "runtime"

type options struct {
	workers int
	logger  *Logger
	metrics MetricsCollector
}

// Option configures a FindClosePairs call.
type Option func(*options)

func defaultOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// WithWorkers caps the number of concurrently running stage workers.
//
// All stages are CPU-bound in-memory computation, so values above
// runtime.GOMAXPROCS(0) (the default) rarely help. Values <= 0 keep the
// default.
func WithWorkers(workers int) Option {
	return func(o *options) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

// WithLogger configures structured logging for filter calls. The default
// logger discards all output.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring the
// filter stages. Pass nil to disable collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &coilprox.BasicMetricsCollector{}
//	pairs, err := coilprox.FindClosePairs(ctx, clouds, threshold, nbc,
//	    coilprox.WithMetricsCollector(metrics))
//	fmt.Println(metrics.BroadPhaseSurvivors.Load())
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}
