// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package field

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"
)

// OpenSimplex is Kurt Spencer's OpenSimplex noise, which differs from simplex
// noise in lattice and gradients but has the same range and feel.
type OpenSimplex struct {
	noise opensimplex.Noise
}

func NewOpenSimplex(seed int64) OpenSimplex {
	return OpenSimplex{noise: opensimplex.New(seed)}
}

func (o OpenSimplex) Eval2(v mgl32.Vec2) float32 {
	return float32(o.noise.Eval2(float64(v[0]), float64(v[1])))
}

func (o OpenSimplex) Eval3(v mgl32.Vec3) float32 {
	return float32(o.noise.Eval3(float64(v[0]), float64(v[1]), float64(v[2])))
}

func (o OpenSimplex) Eval4(v mgl32.Vec4) float32 {
	return float32(o.noise.Eval4(float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])))
}
