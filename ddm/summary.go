// SPDX-License-Identifier: MIT
package ddm

import (
	"fmt"
	"strings"
	"time"
)

// Summary accumulates per-phase timings and combinatorial counters for one
// engine run, mirroring the original Summary class's report stream. Run
// times only the computing-basis phase; the other five phase durations
// are never recorded and String reports them as zero.
type Summary struct {
	computingBasisTime            time.Duration
	selectingPivotTime            time.Duration
	classifyingRaysTime           time.Duration
	potentialAdjacencyTestingTime time.Duration
	adjacencyTestingTime          time.Duration
	partitioningTime              time.Duration

	numExtremeRays int
	numEdges       int
	numFacets      int
	numIterations  int

	totalNumRays                    int
	totalNumPotentialAdjacencyTests int
	totalNumAdjacencyTests          int
	totalNumEdges                   int
	totalNumDotproducts             int
}

type phaseTimer struct {
	acc   *time.Duration
	start time.Time
}

func (s *Summary) startComputingBasis() phaseTimer { return phaseTimer{&s.computingBasisTime, time.Now()} }
func (s *Summary) startSelectingPivot() phaseTimer { return phaseTimer{&s.selectingPivotTime, time.Now()} }
func (s *Summary) startClassifyingRays() phaseTimer {
	return phaseTimer{&s.classifyingRaysTime, time.Now()}
}
func (s *Summary) startPotentialAdjacencyTesting() phaseTimer {
	return phaseTimer{&s.potentialAdjacencyTestingTime, time.Now()}
}
func (s *Summary) startAdjacencyTesting() phaseTimer {
	return phaseTimer{&s.adjacencyTestingTime, time.Now()}
}
func (s *Summary) startPartitioning() phaseTimer { return phaseTimer{&s.partitioningTime, time.Now()} }

// end records the elapsed time since the timer was started. Called when
// the timed phase finishes.
func (t phaseTimer) end() { *t.acc += time.Since(t.start) }

func (s *Summary) addRays(n int)                    { s.totalNumRays += n }
func (s *Summary) addPotentialAdjacencyTests(n int) { s.totalNumPotentialAdjacencyTests += n }
func (s *Summary) addAdjacencyTests(n int)          { s.totalNumAdjacencyTests += n }
func (s *Summary) addEdges(n int)                   { s.totalNumEdges += n }
func (s *Summary) addDotProduct()                   { s.totalNumDotproducts++ }

// SetFinalCounts records the shape of the finished cone: its extreme rays,
// 1-skeleton edges, active facets and the number of pivot steps taken.
func (s *Summary) SetFinalCounts(extremeRays, edges, facets, iterations int) {
	s.numExtremeRays = extremeRays
	s.numEdges = edges
	s.numFacets = facets
	s.numIterations = iterations
}

// String renders the summary stream: per-phase timings with percentages,
// then the counters.
func (s *Summary) String() string {
	total := s.computingBasisTime + s.selectingPivotTime + s.classifyingRaysTime +
		s.potentialAdjacencyTestingTime + s.adjacencyTestingTime + s.partitioningTime

	var b strings.Builder
	fmt.Fprintf(&b, "Total computational time: %s\n", total)

	phases := []struct {
		name string
		d    time.Duration
	}{
		{"computing basis", s.computingBasisTime},
		{"selecting pivot", s.selectingPivotTime},
		{"classifying rays", s.classifyingRaysTime},
		{"potential adjacency testing", s.potentialAdjacencyTestingTime},
		{"adjacency testing", s.adjacencyTestingTime},
		{"partitioning", s.partitioningTime},
	}
	for _, p := range phases {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(p.d) / float64(total)
		}
		fmt.Fprintf(&b, "    %s: %s (%.1f%%)\n", p.name, p.d, pct)
	}

	fmt.Fprintf(&b, "Total rays created: %d\n", s.totalNumRays)
	fmt.Fprintf(&b, "Potential adjacency tests performed: %d\n", s.totalNumPotentialAdjacencyTests)
	fmt.Fprintf(&b, "Adjacency tests performed: %d\n", s.totalNumAdjacencyTests)
	fmt.Fprintf(&b, "Total edges created: %d\n", s.totalNumEdges)
	fmt.Fprintf(&b, "Dot products computed: %d\n", s.totalNumDotproducts)
	fmt.Fprintf(&b, "Number of extreme rays: %d\n", s.numExtremeRays)
	fmt.Fprintf(&b, "Number of edges: %d\n", s.numEdges)
	fmt.Fprintf(&b, "Number of facets: %d\n", s.numFacets)
	fmt.Fprintf(&b, "Number of iterations: %d\n", s.numIterations)
	return b.String()
}
