// SPDX-License-Identifier: MIT
package ddm

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/dualcone/dmatrix"
	"github.com/katalvlaran/dualcone/numeric"
)

// noRay is the sentinel Handle meaning "no ray is currently assigned to
// this inequality". Handle 0 is reserved by arena.New for exactly this
// purpose.
const noRay Handle = 0

// pivoting drives one full run's outer loop: selecting the pivot
// inequality, classifying rays against it by BFS, and repartitioning
// outside sets among the survivors. Grounded on
// original_source/src/ddm/Pivoting.hpp.
type pivoting[T numeric.Value] struct {
	order              PivotingOrder
	storeDiscrepancies bool
	summary            *Summary
	factory            *RayFactory[T]
	inequalities       *dmatrix.Dense[T]
	tol                numeric.Tolerance[T]

	step         int
	pivotRay     Handle
	pivotIneIdx  int
	numProcessed int

	assigneeRays          []Handle
	notProcessedInequalities []int
}

func newPivoting[T numeric.Value](order PivotingOrder, storeDiscrepancies bool, summary *Summary, factory *RayFactory[T], ineqs *dmatrix.Dense[T], tol numeric.Tolerance[T]) *pivoting[T] {
	m := ineqs.NRows()
	notProcessed := make([]int, m)
	for i := range notProcessed {
		notProcessed[i] = i
	}
	return &pivoting[T]{
		order:                    order,
		storeDiscrepancies:       storeDiscrepancies,
		summary:                  summary,
		factory:                  factory,
		inequalities:             ineqs,
		tol:                      tol,
		assigneeRays:             make([]Handle, m),
		notProcessedInequalities: notProcessed,
	}
}

// reorderInequalities returns a copy of ineqs with its rows reordered per
// order, and the permutation mapping new row index to the row's original
// index (needed to translate cobases back to input facet indices later).
// Quickhull and MinIndex leave the input order untouched.
func reorderInequalities[T numeric.Value](ineqs *dmatrix.Dense[T], order PivotingOrder) (*dmatrix.Dense[T], []int) {
	n := ineqs.NRows()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	switch order {
	case LexMin, LexMax:
		sort.SliceStable(idx, func(a, b int) bool {
			ra, rb := ineqs.Row(idx[a]), ineqs.Row(idx[b])
			for k := range ra {
				if ra[k] != rb[k] {
					return ra[k] < rb[k]
				}
			}
			return false
		})
		if order == LexMax {
			reverseInts(idx)
		}
	case MaxIndex:
		reverseInts(idx)
	case Random:
		rand.Shuffle(n, func(a, b int) { idx[a], idx[b] = idx[b], idx[a] })
	default:
		// Quickhull, MinIndex: input order is already the desired order.
	}

	rows := make([][]T, n)
	for newPos, origIdx := range idx {
		rows[newPos] = ineqs.Row(origIdx)
	}
	reordered, _ := dmatrix.NewDenseFromRows(rows)
	return reordered, idx
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// computeDiscrepancy returns the signed inner product of ray's coordinates
// against inequality row ineIdx.
func (p *pivoting[T]) computeDiscrepancy(ray *Ray[T], ineIdx int) T {
	row := p.inequalities.Row(ineIdx)
	var product T
	for i, coeff := range row {
		product += ray.Coordinates[i] * coeff
	}
	return product
}

// computeDiscrepancies fills disc[i] with the inner product of coords
// against every inequality row, used to seed a new ray's plusplus cache.
func (p *pivoting[T]) computeDiscrepancies(coords []T, disc []T) {
	for i := 0; i < p.inequalities.NRows(); i++ {
		row := p.inequalities.Row(i)
		var product T
		for j, coeff := range row {
			product += coords[j] * coeff
		}
		disc[i] = product
	}
}

// next selects the pivot ray and inequality for this step, per the current
// PivotingOrder.
func (p *pivoting[T]) next(extremeRays []Handle) {
	p.step++
	switch p.order {
	case Quickhull:
		p.nextQuickhull(extremeRays)
	default:
		p.nextStatic()
	}
}

func (p *pivoting[T]) nextQuickhull(extremeRays []Handle) {
	var seed Handle
	for _, h := range extremeRays {
		if len(p.factory.Arena.Get(h).AssignedInequalities) > 0 {
			seed = h
			break
		}
	}
	ray := p.factory.Arena.Get(seed)
	pivotIne := ray.AssignedInequalities[0]
	minDiscrepancy := p.computeDiscrepancy(ray, pivotIne)
	for _, ineIdx := range ray.AssignedInequalities[1:] {
		d := p.computeDiscrepancy(ray, ineIdx)
		if d < minDiscrepancy {
			minDiscrepancy = d
			pivotIne = ineIdx
		}
	}
	ray.PivotDiscrepancy = minDiscrepancy
	p.pivotRay = seed
	p.pivotIneIdx = pivotIne
}

// nextStatic advances the cursor to the next inequality that has a minus
// ray assigned to it, used by every non-quickhull PivotingOrder once the
// matrix has been physically reordered upfront.
func (p *pivoting[T]) nextStatic() {
	for p.assigneeRays[p.pivotIneIdx] == noRay {
		p.pivotIneIdx++
	}
	p.pivotRay = p.assigneeRays[p.pivotIneIdx]
	ray := p.factory.Arena.Get(p.pivotRay)
	ray.PivotDiscrepancy = p.computeDiscrepancy(ray, p.pivotIneIdx)
}

// searchAdj is the BFS relaxation step: for every not-yet-visited neighbor
// of ray, classify it against the pivot inequality and rewrite the edge
// according to the sign the neighbor lands on.
func (p *pivoting[T]) searchAdj(rayH Handle, minusRays, zeroRays, newRays *[]Handle) {
	ray := p.factory.Arena.Get(rayH)
	survivors := ray.Adjacent[:0]
	for _, adjH := range ray.Adjacent {
		adj := p.factory.Arena.Get(adjH)
		if adj.VisitingStep != p.step {
			adj.VisitingStep = p.step
			adj.PivotDiscrepancy = p.computeDiscrepancy(adj, p.pivotIneIdx)
			switch p.tol.Sign(adj.PivotDiscrepancy) {
			case -1:
				*minusRays = append(*minusRays, adjH)
			case 0:
				adj.Cobasis.Add(p.pivotIneIdx)
				*zeroRays = append(*zeroRays, adjH)
			}
		}

		raySign := p.tol.Sign(ray.PivotDiscrepancy)
		adjSign := p.tol.Sign(adj.PivotDiscrepancy)
		switch {
		case raySign < 0 && adjSign > 0:
			// (-, +) edge: build the new ray on it, keep the edge for now
			// (FromCombination rewrites it to point at the new ray).
			*newRays = append(*newRays, p.factory.FromCombination(adjH, rayH, p.pivotIneIdx))
			survivors = append(survivors, adjH)
		case raySign >= 0 && adjSign > 0:
			// (0, +) edge: keep it.
			survivors = append(survivors, adjH)
		default:
			// (-,-), (-,0), (0,-), (0,0): drop the edge.
		}
	}
	ray.Adjacent = survivors
}

// classifyRays runs the BFS starting at the pivot ray, then repartitions
// outside sets and rebuilds extremeRays with minus rays removed and new
// rays appended. It returns the zero-and-new ray cluster that the caller
// must run adjacency detection against.
func (p *pivoting[T]) classifyRays(extremeRays *[]Handle) []Handle {
	p.next(*extremeRays)

	minusRays := make([]Handle, 0, len(*extremeRays))
	zeroRays := make([]Handle, 0, len(*extremeRays))
	newRays := make([]Handle, 0, len(*extremeRays))

	pivot := p.factory.Arena.Get(p.pivotRay)
	pivot.VisitingStep = p.step
	minusRays = append(minusRays, p.pivotRay)

	minusIdx, zeroIdx := 0, 0
	for minusIdx < len(minusRays) || zeroIdx < len(zeroRays) {
		var rayH Handle
		if minusIdx < len(minusRays) {
			rayH = minusRays[minusIdx]
			minusIdx++
		} else {
			rayH = zeroRays[zeroIdx]
			zeroIdx++
		}
		p.searchAdj(rayH, &minusRays, &zeroRays, &newRays)
	}
	p.summary.addRays(len(newRays))

	cluster := append(append([]Handle{}, zeroRays...), newRays...)
	p.partitionInes(minusRays, cluster)

	survivors := (*extremeRays)[:0]
	for _, h := range *extremeRays {
		ray := p.factory.Arena.Get(h)
		if p.tol.Sign(ray.PivotDiscrepancy) < 0 {
			p.factory.Free(h)
			continue
		}
		survivors = append(survivors, h)
	}
	survivors = append(survivors, newRays...)
	*extremeRays = survivors

	return cluster
}

// partitionInes reassigns every inequality that was outside a now-deleted
// minus ray to the first ray in candidates that still violates it.
func (p *pivoting[T]) partitionInes(minusRays, candidates []Handle) {
	for _, mrH := range minusRays {
		mr := p.factory.Arena.Get(mrH)
		for _, ineIdx := range mr.AssignedInequalities {
			p.assignIne(ineIdx, candidates)
		}
	}
}

// assignIne assigns inequality ineIdx to the first ray in candidates that
// it strictly violates, or marks it processed if none does.
func (p *pivoting[T]) assignIne(ineIdx int, candidates []Handle) {
	for _, h := range candidates {
		p.summary.addDotProduct()
		ray := p.factory.Arena.Get(h)
		if p.tol.Sign(p.computeDiscrepancy(ray, ineIdx)) < 0 {
			ray.AssignedInequalities = append(ray.AssignedInequalities, ineIdx)
			p.assigneeRays[ineIdx] = h
			return
		}
	}
	p.assigneeRays[ineIdx] = noRay
	p.numProcessed++
	p.notProcessedInequalities = removeInt(p.notProcessedInequalities, ineIdx)
}

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func (p *pivoting[T]) isEnded() bool {
	return p.numProcessed >= p.inequalities.NRows()
}
