// SPDX-License-Identifier: MIT

// Package ddm implements the Double Description Method: an incremental
// pivoting algorithm that maintains the extreme rays of a polyhedral cone
// { x : A x >= 0 } while consuming the rows of A one inequality at a time.
//
// Run drives the whole algorithm: Gaussian elimination (via package gauss)
// builds an initial simplicial cone of rank rays, then the main loop repeatedly
// selects a pivot inequality (package-private type pivoting), classifies
// the current rays against it by breadth-first search over the 1-skeleton,
// builds new rays on (-,+) edges, and certifies the resulting candidate
// edges (package-private type adjacencyChecker) before repartitioning the
// remaining inequalities' outside sets.
//
// Grounded on original_source/src/ddm/Algorithm.hpp and its neighbors;
// rays live in a RayFactory-owned arena (package arena) addressed by
// stable Handle values rather than the source's raw pointers.
package ddm
