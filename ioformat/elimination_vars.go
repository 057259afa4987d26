// SPDX-License-Identifier: MIT
package ioformat

import (
	"bufio"
	"io"
	"strconv"
)

// ReadEliminationVariables parses the `-e` file format cmd/fme accepts:
// N, then N 0-based variable indices, whitespace-delimited.
func ReadEliminationVariables(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}

	countTok, ok := next()
	if !ok {
		return nil, ErrMalformedInput
	}
	count, err := strconv.Atoi(countTok)
	if err != nil || count < 0 {
		return nil, ErrMalformedInput
	}

	vars := make([]int, count)
	for i := 0; i < count; i++ {
		tok, ok := next()
		if !ok {
			return nil, ErrMalformedInput
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, ErrMalformedInput
		}
		vars[i] = v
	}
	return vars, nil
}
