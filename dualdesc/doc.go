// SPDX-License-Identifier: MIT

// Package dualdesc computes the dual description of a polyhedral cone by
// Fourier-Motzkin elimination instead of the Double Description Method's
// pivoting, and offers a result checker that cross-validates a computed
// set of extreme rays against the original inequalities.
//
// ViaElimination is grounded on original_source/src/eliminationUI/main.cpp's
// prepareDoubleDescriptionInput/prepareDoubleDescriptionOutput: introduce
// y such that x = Aᵀy, y >= 0; use package gauss to find an invertible
// basis of Aᵀ's columns and substitute the basic y's out by their
// definition; hand the remaining system to package fme; then translate
// back to the original x-coordinates and place the null-space basis ahead
// of the rays as sign-flipped inequality pairs, exactly as ddm.Run's
// finalize does.
package dualdesc
