// SPDX-License-Identifier: MIT
package ddm

import "fmt"

// PivotingOrder selects how the next pivot inequality is chosen.
type PivotingOrder int

const (
	Quickhull PivotingOrder = iota
	MinIndex
	MaxIndex
	LexMin
	LexMax
	Random
)

// IsStatic reports whether the order is decided once up front rather than
// recomputed from the current outside sets on every pivot.
func (o PivotingOrder) IsStatic() bool { return o != Quickhull }

func (o PivotingOrder) String() string {
	switch o {
	case Quickhull:
		return "quickhull"
	case MinIndex:
		return "minindex"
	case MaxIndex:
		return "maxindex"
	case LexMin:
		return "lexmin"
	case LexMax:
		return "lexmax"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// ParsePivotingOrder maps a CLI token to a PivotingOrder.
func ParsePivotingOrder(s string) (PivotingOrder, error) {
	for _, o := range []PivotingOrder{Quickhull, MinIndex, MaxIndex, LexMin, LexMax, Random} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: pivoting order %q", ErrUnknownParameter, s)
}

// AdjacencyTest selects how a candidate edge is certified adjacent.
type AdjacencyTest int

const (
	Graph AdjacencyTest = iota
	Algebraic
	Combinatoric
)

func (a AdjacencyTest) String() string {
	switch a {
	case Graph:
		return "graph"
	case Algebraic:
		return "algebraic"
	case Combinatoric:
		return "combinatoric"
	default:
		return "unknown"
	}
}

// ParseAdjacencyTest maps a CLI token to an AdjacencyTest. "algebraic" is
// rejected: the original never implemented it, so this refuses the flag
// rather than silently aliasing it to combinatoric.
func ParseAdjacencyTest(s string) (AdjacencyTest, error) {
	switch s {
	case "graph":
		return Graph, nil
	case "combinatoric":
		return Combinatoric, nil
	case "algebraic":
		return 0, fmt.Errorf("%w: adjacency test %q is not implemented", ErrUnknownParameter, s)
	default:
		return 0, fmt.Errorf("%w: adjacency test %q", ErrUnknownParameter, s)
	}
}

// SetRepresentation names the cobasis/complementary-index storage strategy.
// Run passes BitField to smallset.Choose as a preference; beyond 128 rows
// Choose falls back to a sorted vector regardless.
type SetRepresentation int

const (
	SortedVector SetRepresentation = iota
	BitField
)

func (r SetRepresentation) String() string {
	if r == BitField {
		return "bitfield"
	}
	return "sortedvector"
}

// ParseSetRepresentation maps a CLI token to a SetRepresentation.
func ParseSetRepresentation(s string) (SetRepresentation, error) {
	switch s {
	case "sortedvector":
		return SortedVector, nil
	case "bitfield":
		return BitField, nil
	default:
		return 0, fmt.Errorf("%w: set representation %q", ErrUnknownParameter, s)
	}
}

// Params configures a Run. The zero value is not valid; build one with
// DefaultParams and Option overrides.
type Params struct {
	PivotingOrder     PivotingOrder
	AdjacencyTest     AdjacencyTest
	SetRepresentation SetRepresentation
	UsePlusPlus       bool
	Epsilon           float64
}

// DefaultParams returns the engine's default configuration: quickhull
// pivoting, combinatoric adjacency, sorted-vector sets, plusplus disabled.
func DefaultParams() Params {
	return Params{
		PivotingOrder:     Quickhull,
		AdjacencyTest:     Combinatoric,
		SetRepresentation: SortedVector,
	}
}

// Option mutates Params returned by DefaultParams.
type Option func(*Params)

// WithPivotingOrder overrides the pivot-selection strategy.
func WithPivotingOrder(o PivotingOrder) Option {
	return func(p *Params) { p.PivotingOrder = o }
}

// WithAdjacencyTest overrides the adjacency-certification strategy.
func WithAdjacencyTest(a AdjacencyTest) Option {
	return func(p *Params) { p.AdjacencyTest = a }
}

// WithSetRepresentation overrides the cobasis storage strategy.
func WithSetRepresentation(r SetRepresentation) Option {
	return func(p *Params) { p.SetRepresentation = r }
}

// WithPlusPlus enables discrepancy caching for the plusplus adjacency
// pruning optimization.
func WithPlusPlus() Option {
	return func(p *Params) { p.UsePlusPlus = true }
}

// WithEpsilon sets the floating-point tolerance. Ignored for integer runs,
// which always compare against exact zero (numeric.NewTolerance forces
// this).
func WithEpsilon(eps float64) Option {
	return func(p *Params) { p.Epsilon = eps }
}
