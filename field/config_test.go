// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package field

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SoftbearStudios/simplex/geom"
	"github.com/SoftbearStudios/simplex/simplex"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		json string
		want Config
	}{
		{
			`{"kind":"simplex","seed":7}`,
			Config{Kind: KindSimplex, Seed: 7},
		},
		{
			`{"kind":"fractal","seed":-3,"octaves":5,"amplitude":2,"lacunarity":2.5,"persistence":0.25,"frequency":0.5}`,
			Config{Kind: KindFractal, Seed: -3, Octaves: 5, Amplitude: 2, Lacunarity: 2.5, Persistence: 0.25, Frequency: 0.5},
		},
		{
			`{"kind":"flow","angle":1.25}`,
			Config{Kind: KindFlow, Angle: 1.25},
		},
		{
			`{"kind":"flow","angle":"180deg"}`,
			Config{Kind: KindFlow, Angle: geom.Degrees(180)},
		},
	}

	for _, test := range tests {
		c, err := Decode([]byte(test.json))
		if err != nil {
			t.Errorf("Decode(%s) unexpected error: %v", test.json, err)
			continue
		}
		if c != test.want {
			t.Errorf("Decode(%s) expected %+v, got %+v", test.json, test.want, c)
		}
	}
}

func TestDecode_Error(t *testing.T) {
	tests := []string{
		`{"kind":"simplex","sead":7}`,
		`{"kind":"flow","angle":"sideways"}`,
		`{"seed":"seven"}`,
		`[1, 2]`,
	}

	for _, test := range tests {
		if c, err := Decode([]byte(test)); err == nil {
			t.Errorf("Decode(%s) expected error, got %+v", test, c)
		}
	}
}

func TestConfig_Encode(t *testing.T) {
	c := Config{Kind: KindFlow, Seed: 12, Octaves: 3, Lacunarity: 2, Persistence: 0.5, Angle: 1.25, Frequency: 4}

	data, err := c.Encode()
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"kind":"flow","seed":12,"octaves":3,"lacunarity":2,"persistence":0.5,"angle":1.25,"frequency":4}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != c {
		t.Errorf("expected %+v, got %+v", c, decoded)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.json")
	if err := os.WriteFile(path, []byte(`{"kind":"perlin","seed":3}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Kind != KindPerlin || c.Seed != 3 {
		t.Errorf("unexpected %+v", c)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfig_UnknownKind(t *testing.T) {
	c := Config{Kind: "worley"}

	if _, err := c.Source2(); err == nil || !strings.Contains(err.Error(), "worley") {
		t.Errorf("Source2 expected unknown kind error, got %v", err)
	}
	if _, err := c.Source3(); err == nil {
		t.Error("Source3 expected unknown kind error")
	}
	if _, err := c.Source4(); err == nil {
		t.Error("Source4 expected unknown kind error")
	}
}

func TestConfig_Source4(t *testing.T) {
	for _, kind := range []Kind{KindFlow, KindPerlin} {
		if _, err := (Config{Kind: kind}).Source4(); err == nil {
			t.Errorf("%s expected no 4D form", kind)
		}
	}
	for _, kind := range []Kind{KindSimplex, KindFractal, KindOpenSimplex} {
		src, err := (Config{Kind: kind, Seed: 1}).Source4()
		if err != nil {
			t.Errorf("%s unexpected error: %v", kind, err)
			continue
		}
		v := src.Eval4(mgl32.Vec4{0.3, 0.1, -0.7, 2.2})
		if math32.IsNaN(v) || math32.Abs(v) > 1.5 {
			t.Errorf("%s out of range: %f", kind, v)
		}
	}
}

func TestConfig_Source2(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	points := make([]mgl32.Vec2, 256)
	for i := range points {
		points[i] = mgl32.Vec2{r.Float32()*20 - 10, r.Float32()*20 - 10}
	}

	tests := []struct {
		config Config
		want   func(v mgl32.Vec2) float32
	}{
		{
			Config{Seed: 5},
			func(v mgl32.Vec2) float32 { return simplex.Eval2(v, 5) },
		},
		{
			Config{Kind: KindSimplex, Seed: 5, Frequency: 0.25},
			func(v mgl32.Vec2) float32 { return simplex.Eval2(v.Mul(0.25), 5) },
		},
		{
			Config{Kind: KindFractal, Seed: 9, Octaves: 3},
			func(v mgl32.Vec2) float32 { return simplex.FBM2(v, 9, 3, 1, 2, 0.5) },
		},
		{
			Config{Kind: KindFlow, Seed: 2, Angle: 0.5},
			func(v mgl32.Vec2) float32 { return simplex.Flow2(v, 0.5, 2) },
		},
	}

	for _, test := range tests {
		src, err := test.config.Source2()
		if err != nil {
			t.Errorf("%+v unexpected error: %v", test.config, err)
			continue
		}
		for _, p := range points {
			if got, want := src.Eval2(p), test.want(p); got != want {
				t.Errorf("%+v at %v expected %f, got %f", test.config, p, want, got)
				break
			}
		}
	}
}

func TestConfig_Source3(t *testing.T) {
	for _, kind := range []Kind{KindSimplex, KindFractal, KindFlow, KindPerlin, KindOpenSimplex} {
		src, err := (Config{Kind: kind, Seed: 4}).Source3()
		if err != nil {
			t.Errorf("%s unexpected error: %v", kind, err)
			continue
		}

		// Same config, same field.
		other, _ := (Config{Kind: kind, Seed: 4}).Source3()
		v := mgl32.Vec3{1.3, -0.4, 2.9}
		if a, b := src.Eval3(v), other.Eval3(v); a != b {
			t.Errorf("%s not deterministic: %f != %f", kind, a, b)
		}
	}
}

// Every source should stay within a sane range and vary across the plane.
func TestSources_Range(t *testing.T) {
	sources := map[string]Source2{
		"simplex":     Simplex{Seed: 1},
		"fractal":     Fractal{Seed: 1, Octaves: 4, Amplitude: 1, Lacunarity: 2, Persistence: 0.5},
		"flow":        Flow{Seed: 1, Angle: geom.Degrees(30)},
		"perlin":      NewPerlin(1, 3, 2, 0.5),
		"opensimplex": NewOpenSimplex(1),
	}

	r := rand.New(rand.NewSource(2))
	for name, src := range sources {
		var lo, hi float32
		for i := 0; i < 2000; i++ {
			v := src.Eval2(mgl32.Vec2{r.Float32()*50 - 25, r.Float32()*50 - 25})
			if math32.IsNaN(v) || math32.Abs(v) > 1.5 {
				t.Fatalf("%s out of range: %f", name, v)
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
		if hi-lo < 0.2 {
			t.Errorf("%s barely varies: [%f, %f]", name, lo, hi)
		}
	}
}

func BenchmarkSources(b *testing.B) {
	const count = 1024
	points := make([]mgl32.Vec2, count)
	for i := range points {
		points[i] = mgl32.Vec2{rand.Float32()*100 - 50, rand.Float32()*100 - 50}
	}

	sources := map[string]Source2{
		"simplex":     Simplex{Seed: 1},
		"perlin":      NewPerlin(1, 1, 2, 0.5),
		"opensimplex": NewOpenSimplex(1),
	}

	for name, src := range sources {
		b.Run(name, func(b *testing.B) {
			var acc float32
			for i := 0; i < b.N; i++ {
				acc += src.Eval2(points[i&(count-1)])
			}
			_ = acc
		})
	}
}
