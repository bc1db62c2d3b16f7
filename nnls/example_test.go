package nnls_test

import (
	"fmt"

	"github.com/katalvlaran/fsc/matrix"
	"github.com/katalvlaran/fsc/nnls"
)

// ExampleSolve projects the negative component of an identity system.
func ExampleSolve() {
	id, _ := matrix.NewIdentity(3)
	res, err := nnls.Solve(id, []float64{1, -1, 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f converged=%v\n", res.X, res.Converged)
	// Output: [1.0 0.0 2.0] converged=true
}
