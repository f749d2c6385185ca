// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package simplex

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestFBM_OneOctave(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 1000; n++ {
		seed := r.Int31()
		v2, v3, v4 := randVec2(r, 20), randVec3(r, 20), randVec4(r, 20)

		if a, b := FBM2(v2, seed, 1, 1, 2, 0.5), Eval2(v2, seed); a != b {
			t.Fatalf("FBM2 one octave %f, Eval2 %f", a, b)
		}
		if a, b := FBM3(v3, seed, 1, 1, 2, 0.5), Eval3(v3, seed); a != b {
			t.Fatalf("FBM3 one octave %f, Eval3 %f", a, b)
		}
		if a, b := FBM4(v4, seed, 1, 1, 2, 0.5), Eval4(v4, seed); a != b {
			t.Fatalf("FBM4 one octave %f, Eval4 %f", a, b)
		}
	}
}

func TestFBM2_Known(t *testing.T) {
	v := mgl32.Vec2{0.3, 0.7}
	const seed = 42

	want := (Eval2(v, seed)*1 +
		Eval2(v.Mul(2), seed)*0.5 +
		Eval2(v.Mul(4), seed)*0.25 +
		Eval2(v.Mul(8), seed)*0.125) / 1.875

	if got := FBM2(v, seed, 4, 1, 2, 0.5); math32.Abs(got-want) > 1e-6 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestFBM_Normalization(t *testing.T) {
	v := mgl32.Vec2{1.7, -2.2}
	const seed = 3

	tests := []struct {
		name        string
		octaves     int
		amplitude   float32
		persistence float32
		same        func() float32
	}{
		{"zero octaves", 0, 1, 0.5, func() float32 { return FBM2(v, seed, 1, 1, 2, 0.5) }},
		{"negative octaves", -4, 1, 0.5, func() float32 { return FBM2(v, seed, 1, 1, 2, 0.5) }},
		{"zero amplitude", 3, 0, 0.5, func() float32 { return FBM2(v, seed, 3, 1, 2, 0.5) }},
		{"zero persistence", 3, 1, 0, func() float32 { return FBM2(v, seed, 3, 1, 2, Epsilon) }},
		{"negative persistence", 3, 1, -1, func() float32 { return FBM2(v, seed, 3, 1, 2, Epsilon) }},
	}

	for _, test := range tests {
		got := FBM2(v, seed, test.octaves, test.amplitude, 2, test.persistence)
		if want := test.same(); got != want {
			t.Errorf("%s: expected %f, got %f", test.name, want, got)
		}
	}

	// Amplitude cancels out.
	a := FBM3(mgl32.Vec3{0.1, 0.2, 0.3}, seed, 5, 1, 2, 0.5)
	b := FBM3(mgl32.Vec3{0.1, 0.2, 0.3}, seed, 5, 8, 2, 0.5)
	if math32.Abs(a-b) > 1e-6 {
		t.Errorf("amplitude changed the result: %f vs %f", a, b)
	}
}

func TestFBM_Range(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for n := 0; n < samples; n++ {
		seed := r.Int31()
		octaves := 1 + r.Intn(8)
		lacunarity := 1.5 + r.Float32()
		persistence := 0.25 + r.Float32()*0.5

		values := [3]float32{
			FBM2(randVec2(r, 16), seed, octaves, 1, lacunarity, persistence),
			FBM3(randVec3(r, 16), seed, octaves, 1, lacunarity, persistence),
			FBM4(randVec4(r, 16), seed, octaves, 1, lacunarity, persistence),
		}
		for d, v := range values {
			if math32.IsNaN(v) || math32.Abs(v) > bound {
				t.Fatalf("%dD fbm out of range: %f", d+2, v)
			}
		}
	}
}

func BenchmarkFBM2(b *testing.B) {
	const count = 1024
	r := rand.New(rand.NewSource(1))
	points := make([]mgl32.Vec2, count)
	for i := range points {
		points[i] = randVec2(r, 100)
	}
	b.ResetTimer()

	var acc float32
	for i := 0; i < b.N; i++ {
		acc += FBM2(points[i&(count-1)], 1, 6, 1, 2, 0.5)
	}
	_ = acc
}

func BenchmarkFBM3(b *testing.B) {
	const count = 1024
	r := rand.New(rand.NewSource(1))
	points := make([]mgl32.Vec3, count)
	for i := range points {
		points[i] = randVec3(r, 100)
	}
	b.ResetTimer()

	var acc float32
	for i := 0; i < b.N; i++ {
		acc += FBM3(points[i&(count-1)], 1, 6, 1, 2, 0.5)
	}
	_ = acc
}
