// SPDX-License-Identifier: MIT

// Package fme implements Fourier-Motzkin Elimination with Chernikov's
// rules: repeatedly pick a variable, pair every inequality with a positive
// coefficient on it against every inequality with a negative coefficient,
// keep only the pairs the first Chernikov rule allows, and prune the
// combined set with the second Chernikov rule before moving to the next
// variable.
//
// Grounded on original_source/src/elimination/Elimination.hpp,
// Inequality.hpp and Order.hpp. Inequalities live in an
// InequalityFactory-owned arena addressed by Handle, mirroring package
// ddm's Ray/RayFactory split.
//
// The original's MinPairs/MaxPairs orderings are unsound: both select the
// elimination variable via a max-element scan, one with an inverted
// comparator, so MinPairs does not in fact minimize the pair count.
// Package fme implements the sound reading instead: MinPairs minimizes
// numPlus(v)*numMinus(v) and MaxPairs maximizes it. See order.go.
package fme
