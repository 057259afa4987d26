// SPDX-License-Identifier: MIT
package dualdesc_test

import (
	"testing"

	"github.com/katalvlaran/dualcone/ddm"
	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/dualdesc"
	"github.com/katalvlaran/dualcone/numeric"
	"github.com/stretchr/testify/require"
)

func TestVerifyAcceptsCorrectResult(t *testing.T) {
	a, err := dmatrix.NewDenseFromRows([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	res, err := ddm.Run(a)
	require.NoError(t, err)

	tol := numeric.NewTolerance[int64](0)
	violations := dualdesc.Verify(a, res.Rays, res.Facets, tol)
	require.Empty(t, violations)
}

func TestVerifyReportsInfeasibleRay(t *testing.T) {
	a, err := dmatrix.NewDenseFromRows([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	badRays, err := dmatrix.NewDenseFromRows([][]int64{{-1, 0}, {0, 1}})
	require.NoError(t, err)

	tol := numeric.NewTolerance[int64](0)
	violations := dualdesc.Verify(a, badRays, []int{0, 1}, tol)
	require.NotEmpty(t, violations)
	require.Equal(t, dualdesc.Infeasible, violations[0].Kind)
	require.Equal(t, 0, violations[0].RayIndex)
	require.Equal(t, 0, violations[0].InequalityIndex)
}
