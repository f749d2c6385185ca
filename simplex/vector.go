// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package simplex

import "github.com/go-gl/mathgl/mgl32"

// Vector2 returns a 2D vector of noise. Each component samples Eval2 with v
// pushed along that component's axis by |v|/sqrt(2).
func Vector2(v mgl32.Vec2, seed int32) mgl32.Vec2 {
	return Vector2Deriv(v, seed, nil, nil)
}

// Vector2Deriv is Vector2 that also writes the gradient of each component's
// sample, unless the matching pointer is nil.
func Vector2Deriv(v mgl32.Vec2, seed int32, xDeriv, yDeriv *mgl32.Vec2) mgl32.Vec2 {
	st := step2 * v.Len()
	return mgl32.Vec2{
		Eval2Deriv(mgl32.Vec2{v[0] + st, v[1]}, seed, xDeriv),
		Eval2Deriv(mgl32.Vec2{v[0], v[1] + st}, seed, yDeriv),
	}
}

// Vector3 returns a 3D vector of noise, offsetting by |v|/sqrt(3).
func Vector3(v mgl32.Vec3, seed int32) mgl32.Vec3 {
	return Vector3Deriv(v, seed, nil, nil, nil)
}

func Vector3Deriv(v mgl32.Vec3, seed int32, xDeriv, yDeriv, zDeriv *mgl32.Vec3) mgl32.Vec3 {
	st := step3 * v.Len()
	return mgl32.Vec3{
		Eval3Deriv(mgl32.Vec3{v[0] + st, v[1], v[2]}, seed, xDeriv),
		Eval3Deriv(mgl32.Vec3{v[0], v[1] + st, v[2]}, seed, yDeriv),
		Eval3Deriv(mgl32.Vec3{v[0], v[1], v[2] + st}, seed, zDeriv),
	}
}

// Vector4 returns a 4D vector of noise, offsetting by |v|/2.
func Vector4(v mgl32.Vec4, seed int32) mgl32.Vec4 {
	return Vector4Deriv(v, seed, nil, nil, nil, nil)
}

func Vector4Deriv(v mgl32.Vec4, seed int32, xDeriv, yDeriv, zDeriv, wDeriv *mgl32.Vec4) mgl32.Vec4 {
	st := step4 * v.Len()
	return mgl32.Vec4{
		Eval4Deriv(mgl32.Vec4{v[0] + st, v[1], v[2], v[3]}, seed, xDeriv),
		Eval4Deriv(mgl32.Vec4{v[0], v[1] + st, v[2], v[3]}, seed, yDeriv),
		Eval4Deriv(mgl32.Vec4{v[0], v[1], v[2] + st, v[3]}, seed, zDeriv),
		Eval4Deriv(mgl32.Vec4{v[0], v[1], v[2], v[3] + st}, seed, wDeriv),
	}
}
