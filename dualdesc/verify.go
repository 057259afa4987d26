// SPDX-License-Identifier: MIT
package dualdesc

import (
	"fmt"

	"github.com/katalvlaran/dualcone/ddm"
	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/numeric"
)

// ViolationKind classifies why Verify rejected a computed dual
// description.
type ViolationKind int

const (
	// Infeasible: a reported ray fails one of the original inequalities.
	Infeasible ViolationKind = iota
	// FacetCountMismatch: re-running the engine on the rays did not
	// recover as many facets as were originally reported.
	FacetCountMismatch
	// FacetMissing: an originally reported facet normal is absent from
	// the facets recovered by re-running the engine on the rays.
	FacetMissing
)

func (k ViolationKind) String() string {
	switch k {
	case Infeasible:
		return "infeasible"
	case FacetCountMismatch:
		return "facet count mismatch"
	case FacetMissing:
		return "facet missing"
	default:
		return "unknown"
	}
}

// Violation describes one way a computed dual description failed
// verification.
type Violation[T numeric.Value] struct {
	Kind            ViolationKind
	RayIndex        int
	InequalityIndex int
	DotProduct      T
}

func (v Violation[T]) String() string {
	switch v.Kind {
	case Infeasible:
		return fmt.Sprintf("ray %d violates inequality %d (dot product %v)", v.RayIndex, v.InequalityIndex, v.DotProduct)
	case FacetMissing:
		return fmt.Sprintf("facet %d not recovered by the dual re-run", v.InequalityIndex)
	default:
		return v.Kind.String()
	}
}

// Verify re-derives the dual description of the rays a dual-description
// run reported and cross-checks it against the original run, backing the
// `--check` CLI flag.
//
// Grounded on the `check` function in
// original_source/src/ddmUI/main.cpp: first, every ray must satisfy
// every original inequality (in floating-point mode this is a magnitude
// comparison against tol, not an exact predicate, and remains a
// documented limitation rather than a fix). Second, running the engine
// again on the rays (treating them as the new inequality set) must
// recover exactly the facets the original run reported. Facet normals are
// compared component by component under tol, without normalizing either
// vector first, so a facet recovered as a different positive multiple of
// the input row is reported as FacetMissing.
func Verify[T numeric.Value](a, rays *dmatrix.Dense[T], facets []int, tol numeric.Tolerance[T], opts ...ddm.Option) []Violation[T] {
	var violations []Violation[T]

	for i := 0; i < rays.NRows(); i++ {
		ray := rays.Row(i)
		for j := 0; j < a.NRows(); j++ {
			row := a.Row(j)
			var dot T
			for k, v := range row {
				dot += v * ray[k]
			}
			if tol.Sign(dot) < 0 {
				violations = append(violations, Violation[T]{Kind: Infeasible, RayIndex: i, InequalityIndex: j, DotProduct: dot})
			}
		}
	}
	if len(violations) > 0 {
		return violations
	}

	dual, err := ddm.Run(rays, opts...)
	if err != nil {
		return []Violation[T]{{Kind: FacetCountMismatch}}
	}
	if len(facets) != dual.Rays.NRows() {
		return []Violation[T]{{Kind: FacetCountMismatch}}
	}

	for _, factIdx := range facets {
		orig := a.Row(factIdx)
		present := false
		for j := 0; j < dual.Rays.NRows() && !present; j++ {
			cand := dual.Rays.Row(j)
			match := true
			for k := range orig {
				if !tol.IsZero(orig[k] - cand[k]) {
					match = false
					break
				}
			}
			present = match
		}
		if !present {
			violations = append(violations, Violation[T]{Kind: FacetMissing, InequalityIndex: factIdx})
		}
	}
	return violations
}
