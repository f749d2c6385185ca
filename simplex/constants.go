// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package simplex evaluates seeded simplex noise in 2, 3 and 4 dimensions,
// optionally with its analytic derivative, and sums octaves of it (fBm).
//
// Every function is pure: the result depends only on the coordinate and the
// seed, so any number of goroutines may evaluate noise at once. The only
// shared data are read-only lookup tables.
package simplex

// Skew factors (sqrt(n+1)-1)/n map a coordinate onto the simplex lattice.
const (
	f2 = 0.3660254037844386
	f3 = 1.0 / 3.0
	f4 = 0.30901699437494745
)

// Unskew factors (1-1/sqrt(n+1))/n and their multiples, one per corner.
const (
	g2   = 0.21132486540518708
	g2x2 = 0.42264973081037416

	g3   = 1.0 / 6.0
	g3x2 = 1.0 / 3.0
	g3x3 = 0.5

	g4   = 0.13819660112501053
	g4x2 = 0.27639320225002106
	g4x3 = 0.41458980337503159
	g4x4 = 0.55278640450004212
)

// Output scales. These are empirical and must stay exactly as they are for
// results to match other implementations.
const (
	scale2 = 64.0
	scale3 = 68.0
	scale4 = 54.0
)

// Squared radius of each corner's falloff, t = falloff - |offset|^2.
const falloff = 0.5

// Epsilon is the smallest persistence accepted by FBM.
const Epsilon = 1e-6

// Vector noise offsets each component's sample by step*|v| along its axis.
const (
	step2 = 0.7071067811865475 // 1/sqrt(2)
	step3 = 0.5773502691896258 // 1/sqrt(3)
	step4 = 0.5                // 1/sqrt(4)
)
