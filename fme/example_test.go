// SPDX-License-Identifier: MIT
package fme_test

import (
	"fmt"

	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/fme"
)

// ExampleEliminate eliminates x from { x+y>=0, x-y>=0, -x>=0 }, leaving
// y>=0 and -y>=0 (jointly equivalent to y=0).
func ExampleEliminate() {
	a, _ := dmatrix.NewDenseFromRows([][]int64{
		{1, 1},
		{1, -1},
		{-1, 0},
	})

	result, _, err := fme.Eliminate(a, []int{0}, fme.WithEliminationOrdering(fme.Fixed))
	if err != nil {
		fmt.Println(err)
		return
	}

	for i := 0; i < result.NRows(); i++ {
		fmt.Println(result.Row(i))
	}
	// Output:
	// [0 1]
	// [0 -1]
}
