// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package simplex

import "github.com/go-gl/mathgl/mgl32"

// Eval4 returns 4D simplex noise at v, roughly in [-1, 1].
func Eval4(v mgl32.Vec4, seed int32) float32 {
	return eval4(v, seed, nil)
}

// Eval4Deriv is Eval4 that also writes the gradient of the noise at v to
// deriv, unless deriv is nil.
func Eval4Deriv(v mgl32.Vec4, seed int32, deriv *mgl32.Vec4) float32 {
	return eval4(v, seed, deriv)
}

func eval4(v mgl32.Vec4, seed int32, deriv *mgl32.Vec4) float32 {
	s := (v[0] + v[1] + v[2] + v[3]) * f4
	i := floor(v[0] + s)
	j := floor(v[1] + s)
	k := floor(v[2] + s)
	l := floor(v[3] + s)

	t := float32(i+j+k+l) * g4
	o0 := mgl32.Vec4{
		v[0] - (float32(i) - t),
		v[1] - (float32(j) - t),
		v[2] - (float32(k) - t),
		v[3] - (float32(l) - t),
	}

	c1, c2, c3 := order4(o0[0], o0[1], o0[2], o0[3])

	acc := accum4{deriv: deriv != nil}
	acc.add(o0, i, j, k, l, seed)
	acc.add(offset4(o0, c1, g4), i+c1[0], j+c1[1], k+c1[2], l+c1[3], seed)
	acc.add(offset4(o0, c2, g4x2), i+c2[0], j+c2[1], k+c2[2], l+c2[3], seed)
	acc.add(offset4(o0, c3, g4x3), i+c3[0], j+c3[1], k+c3[2], l+c3[3], seed)
	acc.add(offset4(o0, corner4{1, 1, 1, 1}, g4x4), i+1, j+1, k+1, l+1, seed)

	if deriv != nil {
		*deriv = acc.gradient(scale4)
	}
	return scale4 * acc.n
}

func offset4(o mgl32.Vec4, c corner4, g float32) mgl32.Vec4 {
	return mgl32.Vec4{
		o[0] - float32(c[0]) + g,
		o[1] - float32(c[1]) + g,
		o[2] - float32(c[2]) + g,
		o[3] - float32(c[3]) + g,
	}
}

type accum4 struct {
	n     float32
	dt    mgl32.Vec4
	dg    mgl32.Vec4
	deriv bool
}

func (a *accum4) add(o mgl32.Vec4, i, j, k, l, seed int32) {
	t := falloff - o[0]*o[0] - o[1]*o[1] - o[2]*o[2] - o[3]*o[3]
	if t < 0 {
		return
	}

	g := gradient4(i, j, k, l, seed)
	t2 := t * t
	t4 := t2 * t2
	dot := g[0]*o[0] + g[1]*o[1] + g[2]*o[2] + g[3]*o[3]
	a.n += t4 * dot

	if a.deriv {
		a.dt = a.dt.Add(o.Mul(t2 * t * dot))
		a.dg = a.dg.Add(g.Mul(t4))
	}
}

func (a *accum4) gradient(scale float32) mgl32.Vec4 {
	return a.dt.Mul(-8).Add(a.dg).Mul(scale)
}
