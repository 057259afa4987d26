// SPDX-License-Identifier: MIT
package fme

import (
	"math/rand"

	"github.com/katalvlaran/dualcone/numeric"
)

// order produces the sequence of variables to eliminate, one per step.
// Static orderings (MinIndex, MaxIndex, Random, Fixed) decide the whole
// sequence up front in newOrder. Dynamic orderings (MinPairs, MaxPairs)
// leave variables unsorted after the current step and pick the next one
// lazily in selectNext, since the choice depends on the inequalities still
// alive at that step.
type order struct {
	ordering  EliminationOrdering
	variables []int
}

// newOrder copies vars (the caller retains ownership of the slice it
// passed in) and, for the static orderings, arranges them into their
// final elimination sequence immediately.
func newOrder(vars []int, ordering EliminationOrdering) *order {
	o := &order{
		ordering:  ordering,
		variables: append([]int(nil), vars...),
	}
	switch ordering {
	case MinIndex:
		sortInts(o.variables)
	case MaxIndex:
		sortInts(o.variables)
		reverseInts(o.variables)
	case Random:
		rand.Shuffle(len(o.variables), func(i, j int) {
			o.variables[i], o.variables[j] = o.variables[j], o.variables[i]
		})
	case Fixed:
		// Caller-supplied order, left untouched.
	}
	return o
}

// selectNext returns the variable to eliminate at step, and for the
// dynamic orderings moves it to position step in o.variables. ineqs are
// the inequalities still alive at the start of this step.
//
// The original's MinPairs/MaxPairs are both driven by a max-element scan
// (one with a flipped comparator), which does not minimize the pair
// count for MinPairs. This is the sound reading: MinPairs picks the
// variable minimizing numPlus(v)*numMinus(v), MaxPairs picks the one
// maximizing it.
func selectNext[T numeric.Value](o *order, ineqs []*Inequality[T], step int) int {
	if o.ordering.IsStatic() {
		return o.variables[step]
	}

	size := len(o.variables)
	numPlus := make([]int, size)
	numMinus := make([]int, size)
	for _, ineq := range ineqs {
		for j := step; j < size; j++ {
			switch v := ineq.Normal[o.variables[j]]; {
			case v > 0:
				numPlus[j]++
			case v < 0:
				numMinus[j]++
			}
		}
	}

	best := step
	for j := step + 1; j < size; j++ {
		pj, pb := numPlus[j]*numMinus[j], numPlus[best]*numMinus[best]
		switch o.ordering {
		case MinPairs:
			if pj < pb {
				best = j
			}
		case MaxPairs:
			if pj > pb {
				best = j
			}
		}
	}
	o.variables[step], o.variables[best] = o.variables[best], o.variables[step]
	return o.variables[step]
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
