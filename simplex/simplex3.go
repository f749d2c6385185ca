// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package simplex

import "github.com/go-gl/mathgl/mgl32"

// Eval3 returns 3D simplex noise at v, roughly in [-1, 1].
func Eval3(v mgl32.Vec3, seed int32) float32 {
	return eval3(v, seed, gradient3, nil)
}

// Eval3Deriv is Eval3 that also writes the gradient of the noise at v to
// deriv, unless deriv is nil.
func Eval3Deriv(v mgl32.Vec3, seed int32, deriv *mgl32.Vec3) float32 {
	return eval3(v, seed, gradient3, deriv)
}

type grad3Func func(i, j, k, seed int32) mgl32.Vec3

func eval3(v mgl32.Vec3, seed int32, gradient grad3Func, deriv *mgl32.Vec3) float32 {
	s := (v[0] + v[1] + v[2]) * f3
	i := floor(v[0] + s)
	j := floor(v[1] + s)
	k := floor(v[2] + s)

	t := float32(i+j+k) * g3
	o0 := mgl32.Vec3{
		v[0] - (float32(i) - t),
		v[1] - (float32(j) - t),
		v[2] - (float32(k) - t),
	}

	c1, c2 := order3(o0[0], o0[1], o0[2])

	acc := accum3{deriv: deriv != nil}
	acc.add(o0, gradient, i, j, k, seed)
	acc.add(offset3(o0, c1, g3), gradient, i+c1[0], j+c1[1], k+c1[2], seed)
	acc.add(offset3(o0, c2, g3x2), gradient, i+c2[0], j+c2[1], k+c2[2], seed)
	acc.add(offset3(o0, corner3{1, 1, 1}, g3x3), gradient, i+1, j+1, k+1, seed)

	if deriv != nil {
		*deriv = acc.gradient(scale3)
	}
	return scale3 * acc.n
}

// offset3 moves the first corner's offset to the corner c steps away, g being
// the matching multiple of the unskew factor.
func offset3(o mgl32.Vec3, c corner3, g float32) mgl32.Vec3 {
	return mgl32.Vec3{
		o[0] - float32(c[0]) + g,
		o[1] - float32(c[1]) + g,
		o[2] - float32(c[2]) + g,
	}
}

type accum3 struct {
	n     float32
	dt    mgl32.Vec3
	dg    mgl32.Vec3
	deriv bool
}

func (a *accum3) add(o mgl32.Vec3, gradient grad3Func, i, j, k, seed int32) {
	t := falloff - o[0]*o[0] - o[1]*o[1] - o[2]*o[2]
	if t < 0 {
		return
	}

	g := gradient(i, j, k, seed)
	t2 := t * t
	t4 := t2 * t2
	dot := g[0]*o[0] + g[1]*o[1] + g[2]*o[2]
	a.n += t4 * dot

	if a.deriv {
		a.dt = a.dt.Add(o.Mul(t2 * t * dot))
		a.dg = a.dg.Add(g.Mul(t4))
	}
}

func (a *accum3) gradient(scale float32) mgl32.Vec3 {
	return a.dt.Mul(-8).Add(a.dg).Mul(scale)
}
