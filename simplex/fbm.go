// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package simplex

import "github.com/go-gl/mathgl/mgl32"

// FBM2 sums octaves of Eval2. Octave o samples at v*lacunarity^o and is
// weighted by amplitude*persistence^o; the sum is divided by the total weight.
//
// octaves below 1 count as 1, an amplitude of 0 counts as 1 and persistence is
// at least Epsilon.
func FBM2(v mgl32.Vec2, seed int32, octaves int, amplitude, lacunarity, persistence float32) float32 {
	octaves, amplitude, persistence = fbmParams(octaves, amplitude, persistence)

	var sum, total float32
	freq := float32(1)
	amp := amplitude
	for o := 0; o < octaves; o++ {
		sum += Eval2(v.Mul(freq), seed) * amp
		total += amp
		freq *= lacunarity
		amp *= persistence
	}
	return sum / total
}

// FBM3 is FBM2 over Eval3.
func FBM3(v mgl32.Vec3, seed int32, octaves int, amplitude, lacunarity, persistence float32) float32 {
	octaves, amplitude, persistence = fbmParams(octaves, amplitude, persistence)

	var sum, total float32
	freq := float32(1)
	amp := amplitude
	for o := 0; o < octaves; o++ {
		sum += Eval3(v.Mul(freq), seed) * amp
		total += amp
		freq *= lacunarity
		amp *= persistence
	}
	return sum / total
}

// FBM4 is FBM2 over Eval4.
func FBM4(v mgl32.Vec4, seed int32, octaves int, amplitude, lacunarity, persistence float32) float32 {
	octaves, amplitude, persistence = fbmParams(octaves, amplitude, persistence)

	var sum, total float32
	freq := float32(1)
	amp := amplitude
	for o := 0; o < octaves; o++ {
		sum += Eval4(v.Mul(freq), seed) * amp
		total += amp
		freq *= lacunarity
		amp *= persistence
	}
	return sum / total
}

func fbmParams(octaves int, amplitude, persistence float32) (int, float32, float32) {
	if octaves < 1 {
		octaves = 1
	}
	if amplitude == 0 {
		amplitude = 1
	}
	if persistence < Epsilon {
		persistence = Epsilon
	}
	return octaves, amplitude, persistence
}
