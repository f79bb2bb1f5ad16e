// Package geom provides the point-cloud model for discretized coil curves
// and the exact narrow-phase distance scan of the proximity filter.
package geom

import "fmt"

// Point is a single 3-D coordinate.
type Point [3]float64

// PointCloud is an ordered sequence of 3-D points discretizing a curve or
// coil. The proximity filter only reads clouds; callers retain ownership and
// must not mutate a cloud while a filter call is in flight.
type PointCloud []Point

// ErrInvalidShape indicates a coordinate row that does not have exactly
// three columns.
type ErrInvalidShape struct {
	Row     int
	Columns int
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("invalid point shape: row %d has %d columns, want 3", e.Row, e.Columns)
}

// FromRows converts a row-major coordinate array into a PointCloud.
// Every row must have exactly three columns. An empty input yields an empty
// cloud, which is valid and simply occupies no grid cells.
func FromRows(rows [][]float64) (PointCloud, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	cloud := make(PointCloud, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, &ErrInvalidShape{Row: i, Columns: len(row)}
		}
		cloud[i] = Point{row[0], row[1], row[2]}
	}

	return cloud, nil
}

// SquaredDistance returns the squared Euclidean distance between a and b.
func SquaredDistance(a, b Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}

// CloserThan reports whether any pair of points, one from each cloud, has
// squared Euclidean distance strictly below thresholdSquared. The scan is
// exhaustive and returns on the first qualifying pair.
func CloserThan(a, b PointCloud, thresholdSquared float64) bool {
	for _, p := range a {
		for _, q := range b {
			if SquaredDistance(p, q) < thresholdSquared {
				return true
			}
		}
	}
	return false
}
