// SPDX-License-Identifier: MIT
package ddm

import (
	"github.com/katalvlaran/dualcone/numeric"
	"github.com/katalvlaran/dualcone/smallset"
)

// adjacencyChecker certifies which pairs of rays in a freshly built cluster
// are 1-skeleton neighbors, grounded on
// original_source/src/ddm/AdjacencyChecker.hpp.
type adjacencyChecker[T numeric.Value] struct {
	test    AdjacencyTest
	plusPlus bool
	summary *Summary
	factory *RayFactory[T]
	rank    int
}

func newAdjacencyChecker[T numeric.Value](test AdjacencyTest, plusPlus bool, summary *Summary, factory *RayFactory[T]) *adjacencyChecker[T] {
	return &adjacencyChecker[T]{test: test, plusPlus: plusPlus, summary: summary, factory: factory}
}

type adjacencyCandidate struct {
	ray     Handle
	cobasis smallset.Set
}

// computeAdjacency certifies and commits adjacency edges among rays,
// against the notProcessed inequality index set used by the plusplus
// pruning heuristic.
func (c *adjacencyChecker[T]) computeAdjacency(rays []Handle, notProcessed []int) {
	for i, rayH := range rays {
		candidates := c.findAdjacencyCandidates(i, rays, notProcessed)
		candidates = c.testAdjacency(rayH, rays, candidates)
		ray := c.factory.Arena.Get(rayH)
		for _, cand := range candidates {
			candRay := c.factory.Arena.Get(cand.ray)
			ray.Adjacent = append(ray.Adjacent, cand.ray)
			candRay.Adjacent = append(candRay.Adjacent, rayH)
		}
		c.summary.addEdges(len(candidates))
	}
}

// findAdjacencyCandidates scans rays[rayIdx+1:] for potential neighbors:
// their cobasis intersection with rays[rayIdx] must have size >= rank-2.
func (c *adjacencyChecker[T]) findAdjacencyCandidates(rayIdx int, rays []Handle, notProcessed []int) []adjacencyCandidate {
	rayH := rays[rayIdx]
	ray := c.factory.Arena.Get(rayH)

	if !c.plusPlus && ray.IsSimple(c.rank) && len(ray.Adjacent) == c.rank+1 {
		return nil
	}

	plusPlusApplicable := c.plusPlus && c.allPositiveOnUnprocessed(ray, notProcessed)

	candidates := make([]adjacencyCandidate, 0, len(rays)-rayIdx-1)
	for j := rayIdx + 1; j < len(rays); j++ {
		other := c.factory.Arena.Get(rays[j])
		if smallset.IntersectionSize(ray.Cobasis, other.Cobasis)+2 < c.rank {
			continue
		}
		if plusPlusApplicable && c.allPositiveOnUnprocessed(other, notProcessed) {
			continue // both endpoints strictly satisfy every unresolved inequality: cannot be minimal
		}
		candidates = append(candidates, adjacencyCandidate{
			ray:     rays[j],
			cobasis: smallset.Intersection(ray.Cobasis, other.Cobasis),
		})
	}
	c.summary.addPotentialAdjacencyTests(len(rays) - rayIdx - 1)
	return candidates
}

func (c *adjacencyChecker[T]) allPositiveOnUnprocessed(ray *Ray[T], notProcessed []int) bool {
	disc := ray.Discrepancies()
	if disc == nil {
		return false
	}
	for _, ineIdx := range notProcessed {
		if disc[ineIdx] <= 0 {
			return false
		}
	}
	return true
}

// testAdjacency certifies candidates, applying the rank<=3/simple-ray
// shortcut before falling back to the chosen AdjacencyTest.
func (c *adjacencyChecker[T]) testAdjacency(rayH Handle, rays []Handle, candidates []adjacencyCandidate) []adjacencyCandidate {
	ray := c.factory.Arena.Get(rayH)
	if ray.IsSimple(c.rank) || c.rank <= 3 {
		return candidates
	}
	c.summary.addAdjacencyTests(len(candidates))

	switch c.test {
	case Graph:
		universe := make([]Handle, 0, len(candidates)+len(ray.Adjacent))
		for _, cand := range candidates {
			universe = append(universe, cand.ray)
		}
		universe = append(universe, ray.Adjacent...)
		return c.removeDominatedEdges(rayH, universe, candidates)
	default: // Combinatoric
		return c.removeDominatedEdges(rayH, rays, candidates)
	}
}

// removeDominatedEdges drops every candidate whose edgeCobasis is a subset
// of some third ray's cobasis: such an edge is not minimal, so its
// endpoints are not adjacent.
func (c *adjacencyChecker[T]) removeDominatedEdges(rayH Handle, universe []Handle, candidates []adjacencyCandidate) []adjacencyCandidate {
	survivors := candidates[:0]
	for _, cand := range candidates {
		dominated := false
		for _, uH := range universe {
			if uH == rayH || uH == cand.ray {
				continue
			}
			if cand.cobasis.IsSubsetOf(c.factory.Arena.Get(uH).Cobasis) {
				dominated = true
				break
			}
		}
		if !dominated {
			survivors = append(survivors, cand)
		}
	}
	return survivors
}
