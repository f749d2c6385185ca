// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package simplex

import (
	"github.com/SoftbearStudios/simplex/geom"
	"github.com/go-gl/mathgl/mgl32"
)

// Flow2 is Eval2 with every lattice gradient rotated by angle. Animating the
// angle makes the noise swirl in place instead of scrolling. At an angle of 0
// it equals Eval2.
func Flow2(v mgl32.Vec2, angle geom.Angle, seed int32) float32 {
	return eval2(v[0], v[1], seed, newRotator(angle).gradient2, nil)
}

// Flow2Deriv is Flow2 that also writes the gradient at v to deriv, unless
// deriv is nil. The angle is held constant.
func Flow2Deriv(v mgl32.Vec2, angle geom.Angle, seed int32, deriv *mgl32.Vec2) float32 {
	return eval2(v[0], v[1], seed, newRotator(angle).gradient2, deriv)
}

// Flow3 is the 3D flow noise. Gradients blend between two tables by the
// cosine and sine of angle.
func Flow3(v mgl32.Vec3, angle geom.Angle, seed int32) float32 {
	return eval3(v, seed, newRotator(angle).gradient3, nil)
}

// Flow3Deriv is Flow3 that also writes the gradient at v to deriv, unless
// deriv is nil.
func Flow3Deriv(v mgl32.Vec3, angle geom.Angle, seed int32, deriv *mgl32.Vec3) float32 {
	return eval3(v, seed, newRotator(angle).gradient3, deriv)
}

func newRotator(angle geom.Angle) rotator {
	sin, cos := angle.Sincos()
	return rotator{cos: cos, sin: sin}
}
