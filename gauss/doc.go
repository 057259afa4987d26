// SPDX-License-Identifier: MIT

// Package gauss simplifies Aᵀ to an echelon form by elementary row
// transforms and column permutation, recording the accumulated transform F,
// the rank, the permutation, and a basis of the null space (Bas). DDM uses
// it to build the initial simplex; the dual-description path uses it to
// eliminate basic variables before Fourier-Motzkin elimination.
//
// It supports two numeric modes: exact-integer (gcd-normalized row
// combinations, no division) and floating-point (direct division against a
// caller-supplied tolerance), grounded on
// original_source/src/utils/GaussianElimination.hpp.
package gauss
