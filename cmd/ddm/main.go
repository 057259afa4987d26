// SPDX-License-Identifier: MIT

// Command ddm computes the extreme rays of a polyhedral cone { x : A x >= 0 }
// by the Double Description Method.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dualcone/ddm"
	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/dualdesc"
	"github.com/katalvlaran/dualcone/ioformat"
	"github.com/katalvlaran/dualcone/numeric"
	"github.com/spf13/cobra"
)

type ddmFlags struct {
	inFile            string
	fromStdin         bool
	outFile           string
	toStdout          bool
	noOutput          bool
	arithmetic        string
	pivotingOrder     string
	setRepresentation string
	checkAdj          string
	plusplus          bool
	check             bool
	noSummary         bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	f := &ddmFlags{}
	cmd := &cobra.Command{
		Use:   "ddm [file]",
		Short: "Compute the extreme rays of a polyhedral cone by the Double Description Method",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f.inFile = args[0]
			}
			return run(f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.inFile, "ifile", "i", "", "input file")
	flags.BoolVar(&f.fromStdin, "istdin", false, "read input from stdin")
	flags.StringVarP(&f.outFile, "ofile", "o", "", "output file")
	flags.BoolVar(&f.toStdout, "ostdout", false, "write output to stdout")
	flags.BoolVar(&f.noOutput, "nooutput", false, "discard output")
	flags.StringVarP(&f.arithmetic, "arithmetic", "a", "int", "arithmetic: int, double or float")
	flags.StringVarP(&f.pivotingOrder, "pivoting", "p", "quickhull", "pivoting order: quickhull, minindex, maxindex, lexmin, lexmax, random")
	flags.StringVar(&f.setRepresentation, "setrepresentation", "sortedvector", "cobasis representation: sortedvector or bitfield")
	flags.StringVar(&f.checkAdj, "checkadj", "combinatoric", "adjacency test: graph or combinatoric")
	flags.BoolVar(&f.plusplus, "plusplus", false, "enable discrepancy caching")
	flags.BoolVar(&f.check, "check", false, "verify the result by solving the dual task")
	flags.BoolVar(&f.noSummary, "nosummary", false, "suppress the summary report")

	return cmd
}

func run(f *ddmFlags) error {
	in, err := openInput(f.inFile, f.fromStdin)
	if err != nil {
		return err
	}
	defer in.Close()

	pivotingOrder, err := ddm.ParsePivotingOrder(f.pivotingOrder)
	if err != nil {
		return err
	}
	adjTest, err := ddm.ParseAdjacencyTest(f.checkAdj)
	if err != nil {
		return err
	}
	setRepr, err := ddm.ParseSetRepresentation(f.setRepresentation)
	if err != nil {
		return err
	}
	opts := []ddm.Option{
		ddm.WithPivotingOrder(pivotingOrder),
		ddm.WithAdjacencyTest(adjTest),
		ddm.WithSetRepresentation(setRepr),
	}
	if f.plusplus {
		opts = append(opts, ddm.WithPlusPlus())
	}

	switch f.arithmetic {
	case "int":
		return runTyped[int64](in, f, opts)
	case "double":
		return runTyped[float64](in, f, opts)
	case "float":
		return runTyped[float32](in, f, opts)
	default:
		return fmt.Errorf("ddm: unknown arithmetic %q", f.arithmetic)
	}
}

func runTyped[T numeric.Value](in *os.File, f *ddmFlags, opts []ddm.Option) error {
	a, err := ioformat.Read[T](in)
	if err != nil {
		return err
	}

	result, err := ddm.Run(a, opts...)
	if err != nil {
		return err
	}

	if err := writeOutput(f.outFile, f.toStdout, f.noOutput, result.Rays); err != nil {
		return err
	}
	if !f.noSummary {
		fmt.Fprint(os.Stdout, result.Summary.String())
	}

	if f.check {
		tol := numeric.NewTolerance[T](0)
		if numeric.IsFloat[T]() {
			eps := 1e-6
			tol = numeric.NewTolerance[T](T(eps))
		}
		violations := dualdesc.Verify(a, result.Rays, result.Facets, tol, opts...)
		if len(violations) == 0 {
			fmt.Fprintln(os.Stdout, "Checking result... PASSED.")
		} else {
			fmt.Fprintln(os.Stdout, "Checking result... FAILED.")
			for _, v := range violations {
				fmt.Fprintln(os.Stdout, v)
			}
		}
	}
	return nil
}

func openInput(path string, fromStdin bool) (*os.File, error) {
	if fromStdin || path == "" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func writeOutput[T numeric.Value](path string, toStdout, noOutput bool, m *dmatrix.Dense[T]) error {
	if noOutput {
		return nil
	}
	if toStdout || path == "" {
		return ioformat.Write(os.Stdout, m)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ioformat.Write(f, m)
}
