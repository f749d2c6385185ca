// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package field

import (
	"github.com/SoftbearStudios/simplex/simplex"
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// Perlin is classic fractal Perlin noise. It only has 2D and 3D forms.
type Perlin struct {
	noise *perlin.Perlin
}

// NewPerlin creates Perlin noise with the given number of octaves. Each
// octave's frequency is multiplied by lacunarity and its weight by
// persistence.
func NewPerlin(seed int64, octaves int, lacunarity, persistence float32) *Perlin {
	if octaves < 1 {
		octaves = 1
	}
	persistence = max(persistence, simplex.Epsilon)

	// go-perlin divides the weight by alpha every octave.
	alpha := 1 / float64(persistence)
	return &Perlin{
		noise: perlin.NewPerlin(alpha, float64(lacunarity), int32(octaves), seed),
	}
}

func (p *Perlin) Eval2(v mgl32.Vec2) float32 {
	return float32(p.noise.Noise2D(float64(v[0]), float64(v[1])))
}

func (p *Perlin) Eval3(v mgl32.Vec3) float32 {
	return float32(p.noise.Noise3D(float64(v[0]), float64(v[1]), float64(v[2])))
}
