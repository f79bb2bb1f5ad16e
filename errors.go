package coilprox

import "fmt"

// ErrInvalidThreshold indicates a proximity threshold that is not a positive
// finite number.
type ErrInvalidThreshold struct {
	Threshold float64
}

func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("invalid threshold %v: must be a positive finite number", e.Threshold)
}

// ErrBaseCurveCount indicates a base-curve count outside [0, len(clouds)].
type ErrBaseCurveCount struct {
	NumBaseCurves int
	NumClouds     int
}

func (e *ErrBaseCurveCount) Error() string {
	return fmt.Sprintf("invalid base curve count %d: must be in [0, %d]", e.NumBaseCurves, e.NumClouds)
}
