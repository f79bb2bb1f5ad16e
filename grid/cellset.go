package grid

import "slices"

// CellSet is a sorted, de-duplicated collection of cells belonging to one
// point cloud. The sorted layout is what makes the merge-style intersection
// walk of the broad phase possible; sets are immutable once built.
type CellSet []Cell

func newCellSet(cells map[Cell]struct{}) CellSet {
	s := make(CellSet, 0, len(cells))
	for c := range cells {
		s = append(s, c)
	}
	slices.SortFunc(s, Cell.Compare)
	return s
}

// Contains reports whether c is in the set.
func (s CellSet) Contains(c Cell) bool {
	_, ok := slices.BinarySearchFunc(s, c, Cell.Compare)
	return ok
}

// Intersects reports whether s and other share at least one cell. Both sets
// are walked with two cursors, advancing the one pointing at the
// lexicographically smaller cell; the first equal pair ends the walk. Runs in
// O(len(s) + len(other)).
func (s CellSet) Intersects(other CellSet) bool {
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch d := s[i].Compare(other[j]); {
		case d == 0:
			return true
		case d < 0:
			i++
		default:
			j++
		}
	}
	return false
}
