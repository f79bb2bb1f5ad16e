package grid

import "github.com/hupe1980/coilprox/geom"

// stencil holds the 27 offsets covering a cell and its face, edge and corner
// neighbors. Built once and reused for every point.
var stencil = func() [27]Cell {
	var s [27]Cell
	n := 0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			for dk := -1; dk <= 1; dk++ {
				s[n] = Cell{I: di, J: dj, K: dk}
				n++
			}
		}
	}
	return s
}()

// Bucketize maps a point cloud onto the uniform grid with cell size
// threshold. occupied holds exactly the cells containing at least one point
// of the cloud; dilated additionally holds the 26 neighbors of every occupied
// cell. threshold must be positive; an empty cloud yields two empty sets.
//
// Bucketizing different clouds is independent and safe to run concurrently.
func Bucketize(cloud geom.PointCloud, threshold float64) (occupied, dilated CellSet) {
	occ := make(map[Cell]struct{}, len(cloud))
	dil := make(map[Cell]struct{}, len(cloud)*4)

	for _, p := range cloud {
		c := CellOf(p, threshold)
		occ[c] = struct{}{}
		for _, off := range stencil {
			dil[Cell{I: c.I + off.I, J: c.J + off.J, K: c.K + off.K}] = struct{}{}
		}
	}

	return newCellSet(occ), newCellSet(dil)
}
