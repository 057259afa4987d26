// SPDX-License-Identifier: MIT
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/numeric"
)

// Read parses r as an M N header followed by M*N whitespace-delimited
// numeric tokens in row-major order. Integer instantiations of T parse
// tokens as machine integers; floating-point instantiations parse them
// as IEEE decimals.
func Read[T numeric.Value](r io.Reader) (*dmatrix.Dense[T], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}

	rowsTok, ok := next()
	if !ok {
		return nil, ErrMalformedInput
	}
	nrows, err := strconv.Atoi(rowsTok)
	if err != nil || nrows < 0 {
		return nil, ErrMalformedInput
	}
	colsTok, ok := next()
	if !ok {
		return nil, ErrMalformedInput
	}
	ncols, err := strconv.Atoi(colsTok)
	if err != nil || ncols < 0 {
		return nil, ErrMalformedInput
	}

	m, err := dmatrix.NewDense[T](nrows, ncols, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nrows; i++ {
		for j := 0; j < ncols; j++ {
			tok, ok := next()
			if !ok {
				return nil, ErrMalformedInput
			}
			v, err := parseToken[T](tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func parseToken[T numeric.Value](tok string) (T, error) {
	if numeric.IsFloat[T]() {
		f, err := strconv.ParseFloat(tok, 64)
		return T(f), err
	}
	i, err := strconv.ParseInt(tok, 10, 64)
	return T(i), err
}
