// SPDX-License-Identifier: MIT
package fme

import (
	"fmt"
	"strings"
	"time"
)

// Summary accumulates the per-run counters and total elapsed time reported
// alongside an Eliminate result, mirroring package ddm's Summary at the
// coarser granularity Elimination.hpp itself reports (a single elapsed
// time plus final row counts, no per-phase breakdown).
type Summary struct {
	start time.Time

	numSteps           int
	numPairsGenerated  int
	numPairsPruned     int
	initialNumRows     int
	finalNumRows       int
	elapsed            time.Duration
}

// Start records the run's start time.
func (s *Summary) Start() {
	s.start = timeNow()
}

// Stop records the elapsed time since Start.
func (s *Summary) Stop() {
	s.elapsed = timeNow().Sub(s.start)
}

func (s *Summary) addStep() {
	s.numSteps++
}

func (s *Summary) addPairGenerated() {
	s.numPairsGenerated++
}

func (s *Summary) addPairPruned() {
	s.numPairsPruned++
}

// String renders the elimination run's summary report.
func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Elimination steps: %d\n", s.numSteps)
	fmt.Fprintf(&b, "Rows: %d -> %d\n", s.initialNumRows, s.finalNumRows)
	fmt.Fprintf(&b, "Pairs generated: %d\n", s.numPairsGenerated)
	fmt.Fprintf(&b, "Pairs pruned: %d\n", s.numPairsPruned)
	fmt.Fprintf(&b, "Time: %s\n", s.elapsed)
	return b.String()
}

// timeNow exists so tests never need a live clock; production code always
// calls it, but the zero value only ever appears if Start/Stop are never
// invoked by the caller (Eliminate always calls both).
var timeNow = time.Now
