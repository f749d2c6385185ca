// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package simplex

import "github.com/go-gl/mathgl/mgl32"

// Eval2 returns 2D simplex noise at v, roughly in [-1, 1].
func Eval2(v mgl32.Vec2, seed int32) float32 {
	return eval2(v[0], v[1], seed, gradient2, nil)
}

// Eval2Deriv is Eval2 that also writes the gradient of the noise at v to
// deriv, unless deriv is nil.
func Eval2Deriv(v mgl32.Vec2, seed int32, deriv *mgl32.Vec2) float32 {
	return eval2(v[0], v[1], seed, gradient2, deriv)
}

type grad2Func func(i, j, seed int32) mgl32.Vec2

func eval2(x, y float32, seed int32, gradient grad2Func, deriv *mgl32.Vec2) float32 {
	s := (x + y) * f2
	i := floor(x + s)
	j := floor(y + s)

	t := float32(i+j) * g2
	x0 := x - (float32(i) - t)
	y0 := y - (float32(j) - t)

	c1 := order2(x0, y0)

	acc := accum2{deriv: deriv != nil}
	acc.add(x0, y0, gradient, i, j, seed)
	acc.add(x0-float32(c1[0])+g2, y0-float32(c1[1])+g2, gradient, i+c1[0], j+c1[1], seed)
	acc.add(x0-1+g2x2, y0-1+g2x2, gradient, i+1, j+1, seed)

	if deriv != nil {
		*deriv = acc.gradient(scale2)
	}
	return scale2 * acc.n
}

// accum2 sums the corner contributions of one 2D sample.
type accum2 struct {
	n     float32    // sum of t^4 * dot(g, o)
	dt    mgl32.Vec2 // sum of t^3 * dot(g, o) * o
	dg    mgl32.Vec2 // sum of t^4 * g
	deriv bool
}

func (a *accum2) add(x, y float32, gradient grad2Func, i, j, seed int32) {
	t := falloff - x*x - y*y
	if t < 0 {
		return
	}

	g := gradient(i, j, seed)
	t2 := t * t
	t4 := t2 * t2
	dot := g[0]*x + g[1]*y
	a.n += t4 * dot

	if a.deriv {
		tmp := t2 * t * dot
		a.dt[0] += tmp * x
		a.dt[1] += tmp * y
		a.dg[0] += t4 * g[0]
		a.dg[1] += t4 * g[1]
	}
}

// gradient finishes d/do[t^4 * dot(g, o)] = -8 t^3 dot(g, o) o + t^4 g.
func (a *accum2) gradient(scale float32) mgl32.Vec2 {
	return mgl32.Vec2{
		(a.dt[0]*-8 + a.dg[0]) * scale,
		(a.dt[1]*-8 + a.dg[1]) * scale,
	}
}

// floor rounds toward negative infinity. Out of range inputs give
// unspecified results.
func floor(x float32) int32 {
	xi := int32(x)
	if x < float32(xi) {
		return xi - 1
	}
	return xi
}
