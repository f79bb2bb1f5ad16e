package grid

import (
	"cmp"
	"fmt"
	"math"

	"github.com/hupe1980/coilprox/geom"
)

// Cell identifies one cube of side threshold in a uniform grid anchored at
// the origin. Indices are signed so the grid extends across the origin.
type Cell struct {
	I, J, K int
}

// String returns a string representation of the Cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.I, c.J, c.K)
}

// Compare orders cells lexicographically on (I, J, K). It is the strict
// total order underlying CellSet iteration.
func (c Cell) Compare(o Cell) int {
	if d := cmp.Compare(c.I, o.I); d != 0 {
		return d
	}
	if d := cmp.Compare(c.J, o.J); d != 0 {
		return d
	}
	return cmp.Compare(c.K, o.K)
}

// CellOf returns the cell owning p. The division uses true mathematical
// floor, not truncation toward zero: x = -0.1 with threshold 1 maps to index
// -1, keeping the grid consistent across the origin.
func CellOf(p geom.Point, threshold float64) Cell {
	return Cell{
		I: int(math.Floor(p[0] / threshold)),
		J: int(math.Floor(p[1] / threshold)),
		K: int(math.Floor(p[2] / threshold)),
	}
}
