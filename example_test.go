package coilprox_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/coilprox"
	"github.com/hupe1980/coilprox/geom"
)

func Example() {
	clouds := []geom.PointCloud{
		{{0, 0, 0}, {1, 0, 0}}, // base coil
		{{0, 0.05, 0}},         // passes close to the base coil
		{{10, 10, 10}},         // far away
	}

	pairs, err := coilprox.FindClosePairs(context.Background(), clouds, 0.1, 1)
	if err != nil {
		panic(err)
	}

	fmt.Println(pairs)
	// Output: [{1 0}]
}
