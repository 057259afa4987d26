// SPDX-License-Identifier: MIT
package numeric_test

import (
	"testing"

	"github.com/katalvlaran/dualcone/numeric"
	"github.com/stretchr/testify/require"
)

func TestGcd(t *testing.T) {
	t.Run("Gcd(a,b) = Gcd(|a|,|b|)", func(t *testing.T) {
		require.Equal(t, numeric.Gcd(12, 8), numeric.Gcd(-12, -8))
		require.Equal(t, numeric.Gcd(12, -8), numeric.Gcd(-12, 8))
	})

	t.Run("Gcd(0,0) = 1", func(t *testing.T) {
		require.Equal(t, int64(1), numeric.Gcd[int64](0, 0))
	})

	t.Run("Gcd(x,0) = |x|", func(t *testing.T) {
		require.Equal(t, int64(7), numeric.Gcd[int64](-7, 0))
		require.Equal(t, int64(7), numeric.Gcd[int64](0, 7))
	})

	t.Run("standard cases", func(t *testing.T) {
		require.Equal(t, int64(6), numeric.Gcd[int64](54, 24))
		require.Equal(t, int64(1), numeric.Gcd[int64](17, 5))
	})
}

func TestGcdVector(t *testing.T) {
	require.Equal(t, int64(1), numeric.GcdVector[int64](nil))
	require.Equal(t, int64(1), numeric.GcdVector([]int64{0, 0, 0}))
	require.Equal(t, int64(4), numeric.GcdVector([]int64{0, 8, -12, 4}))
	require.Equal(t, int64(3), numeric.GcdVector([]int64{3, 6, 9, 15}))
}
