// SPDX-License-Identifier: MIT
package ioformat_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/dualcone/ioformat"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTripInt64(t *testing.T) {
	m, err := ioformat.Read[int64](strings.NewReader("2 3\n1 2 3\n4 5 6\n"))
	require.NoError(t, err)
	require.Equal(t, 2, m.NRows())
	require.Equal(t, []int64{1, 2, 3}, m.Row(0))
	require.Equal(t, []int64{4, 5, 6}, m.Row(1))

	var buf strings.Builder
	require.NoError(t, ioformat.Write(&buf, m))

	roundTripped, err := ioformat.Read[int64](strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, m.Row(0), roundTripped.Row(0))
	require.Equal(t, m.Row(1), roundTripped.Row(1))
}

func TestReadParsesFloats(t *testing.T) {
	m, err := ioformat.Read[float64](strings.NewReader("1 2\n1.5 -2.25\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, -2.25}, m.Row(0))
}

func TestReadRejectsMalformedHeader(t *testing.T) {
	_, err := ioformat.Read[int64](strings.NewReader("not-a-number 2\n1 2\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedInput)
}

func TestReadRejectsTruncatedBody(t *testing.T) {
	_, err := ioformat.Read[int64](strings.NewReader("2 2\n1 2\n3\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedInput)
}

func TestReadEliminationVariables(t *testing.T) {
	vars, err := ioformat.ReadEliminationVariables(strings.NewReader("3\n0 2 1\n"))
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1}, vars)
}

func TestReadEliminationVariablesRejectsTruncated(t *testing.T) {
	_, err := ioformat.ReadEliminationVariables(strings.NewReader("3\n0 2\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedInput)
}
