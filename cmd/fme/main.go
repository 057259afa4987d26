// SPDX-License-Identifier: MIT

// Command fme eliminates variables from a system of linear inequalities
// by Fourier-Motzkin Elimination. With -d/--dualdescription it instead
// computes the dual description of the input cone via elimination
// (package dualdesc).
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/dualdesc"
	"github.com/katalvlaran/dualcone/fme"
	"github.com/katalvlaran/dualcone/ioformat"
	"github.com/katalvlaran/dualcone/numeric"
	"github.com/spf13/cobra"
)

type fmeFlags struct {
	inFile          string
	fromStdin       bool
	outFile         string
	toStdout        bool
	noOutput        bool
	arithmetic      string
	elimFile        string
	chernikovTest   string
	ordering        string
	dualDescription bool
	noSummary       bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	f := &fmeFlags{}
	cmd := &cobra.Command{
		Use:   "fme [file]",
		Short: "Eliminate variables from a system of linear inequalities by Fourier-Motzkin Elimination",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f.inFile = args[0]
			}
			if f.elimFile != "" && f.dualDescription {
				return fmt.Errorf("fme: --elimination and --dualdescription are incompatible")
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
	flags.StringVarP(&f.elimFile, "elimination", "e", "", "file listing the variables to eliminate")
	flags.StringVarP(&f.chernikovTest, "test", "t", "enumeration", "second Chernikov rule schedule: graph or enumeration")
	flags.StringVar(&f.ordering, "ordering", "minpairs", "elimination ordering: minpairs, maxpairs, minindex, maxindex, random or fixed")
	flags.BoolVarP(&f.dualDescription, "dualdescription", "d", false, "compute the dual description of the input cone via elimination")
	flags.BoolVar(&f.noSummary, "nosummary", false, "suppress the summary report")

	return cmd
}

func run(f *fmeFlags) error {
	in, err := openInput(f.inFile, f.fromStdin)
	if err != nil {
		return err
	}
	defer in.Close()

	chernikov, err := fme.ParseChernikovTest(f.chernikovTest)
	if err != nil {
		return err
	}
	ordering, err := fme.ParseEliminationOrdering(f.ordering)
	if err != nil {
		return err
	}
	opts := []fme.Option{
		fme.WithChernikovTest(chernikov),
		fme.WithEliminationOrdering(ordering),
	}

	var elimVars []int
	if f.elimFile != "" {
		ef, err := os.Open(f.elimFile)
		if err != nil {
			return err
		}
		defer ef.Close()
		elimVars, err = ioformat.ReadEliminationVariables(ef)
		if err != nil {
			return err
		}
	}

	switch f.arithmetic {
	case "int":
		return runTyped[int64](in, f, elimVars, opts)
	case "double":
		return runTyped[float64](in, f, elimVars, opts)
	case "float":
		return runTyped[float32](in, f, elimVars, opts)
	default:
		return fmt.Errorf("fme: unknown arithmetic %q", f.arithmetic)
	}
}

func runTyped[T numeric.Value](in *os.File, f *fmeFlags, elimVars []int, opts []fme.Option) error {
	a, err := ioformat.Read[T](in)
	if err != nil {
		return err
	}

	if f.dualDescription {
		result, err := dualdesc.ViaElimination(a, opts...)
		if err != nil {
			return err
		}
		return writeOutput(f.outFile, f.toStdout, f.noOutput, result)
	}

	if len(elimVars) == 0 {
		elimVars = make([]int, a.NCols())
		for i := range elimVars {
			elimVars[i] = i
		}
	}
	result, summary, err := fme.Eliminate(a, elimVars, opts...)
	if err != nil {
		return err
	}
	if err := writeOutput(f.outFile, f.toStdout, f.noOutput, result); err != nil {
		return err
	}
	if !f.noSummary {
		fmt.Fprint(os.Stdout, summary.String())
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
