// SPDX-License-Identifier: MIT
package ioformat

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/numeric"
)

// Write formats m as an M N header followed by its rows, tab-aligned,
// mirroring the input format Read consumes: output shape is identical
// to input.
func Write[T numeric.Value](w io.Writer, m *dmatrix.Dense[T]) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", m.NRows(), m.NCols()); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for i := 0; i < m.NRows(); i++ {
		row := m.Row(i)
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprintf(tw, "%v", v)
		}
		fmt.Fprint(tw, "\n")
	}
	return tw.Flush()
}

