// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package field

import (
	"github.com/SoftbearStudios/simplex/geom"
	"github.com/SoftbearStudios/simplex/simplex"
	"github.com/go-gl/mathgl/mgl32"
)

// Simplex is plain seeded simplex noise.
type Simplex struct {
	Seed int32
}

func (s Simplex) Eval2(v mgl32.Vec2) float32 {
	return simplex.Eval2(v, s.Seed)
}

func (s Simplex) Eval3(v mgl32.Vec3) float32 {
	return simplex.Eval3(v, s.Seed)
}

func (s Simplex) Eval4(v mgl32.Vec4) float32 {
	return simplex.Eval4(v, s.Seed)
}

// Fractal sums octaves of simplex noise.
type Fractal struct {
	Seed        int32
	Octaves     int
	Amplitude   float32
	Lacunarity  float32
	Persistence float32
}

func (f Fractal) Eval2(v mgl32.Vec2) float32 {
	return simplex.FBM2(v, f.Seed, f.Octaves, f.Amplitude, f.Lacunarity, f.Persistence)
}

func (f Fractal) Eval3(v mgl32.Vec3) float32 {
	return simplex.FBM3(v, f.Seed, f.Octaves, f.Amplitude, f.Lacunarity, f.Persistence)
}

func (f Fractal) Eval4(v mgl32.Vec4) float32 {
	return simplex.FBM4(v, f.Seed, f.Octaves, f.Amplitude, f.Lacunarity, f.Persistence)
}

// Flow is simplex flow noise frozen at one angle. There is no 4D flow noise.
type Flow struct {
	Seed  int32
	Angle geom.Angle
}

func (f Flow) Eval2(v mgl32.Vec2) float32 {
	return simplex.Flow2(v, f.Angle, f.Seed)
}

func (f Flow) Eval3(v mgl32.Vec3) float32 {
	return simplex.Flow3(v, f.Angle, f.Seed)
}
