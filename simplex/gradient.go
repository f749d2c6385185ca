// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package simplex

import "github.com/go-gl/mathgl/mgl32"

var grad2 = [8]mgl32.Vec2{
	{-1, -1},
	{1, 0},
	{-1, 0},
	{1, 1},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
}

// grad3 holds the 12 cube edge midpoints plus 4 repeats. The repeats let the
// low 4 bits of the hash pick an entry without bias, so don't remove them.
var grad3 = [16]mgl32.Vec3{
	{1, 0, 1},
	{0, 1, 1},
	{-1, 0, 1},
	{0, -1, 1},
	{1, 0, -1},
	{0, 1, -1},
	{-1, 0, -1},
	{0, -1, -1},
	{1, -1, 0},
	{1, 1, 0},
	{-1, 1, 0},
	{-1, -1, 0},
	{1, 0, 1},
	{-1, 0, 1},
	{0, 1, -1},
	{0, -1, -1},
}

var grad4 = [32]mgl32.Vec4{
	{0, 1, 1, 1},
	{0, 1, 1, -1},
	{0, 1, -1, 1},
	{0, 1, -1, -1},
	{0, -1, 1, 1},
	{0, -1, 1, -1},
	{0, -1, -1, 1},
	{0, -1, -1, -1},
	{1, 0, 1, 1},
	{1, 0, 1, -1},
	{1, 0, -1, 1},
	{1, 0, -1, -1},
	{-1, 0, 1, 1},
	{-1, 0, 1, -1},
	{-1, 0, -1, 1},
	{-1, 0, -1, -1},
	{1, 1, 0, 1},
	{1, 1, 0, -1},
	{1, -1, 0, 1},
	{1, -1, 0, -1},
	{-1, 1, 0, 1},
	{-1, 1, 0, -1},
	{-1, -1, 0, 1},
	{-1, -1, 0, -1},
	{1, 1, 1, 0},
	{1, 1, -1, 0},
	{1, -1, 1, 0},
	{1, -1, -1, 0},
	{-1, 1, 1, 0},
	{-1, 1, -1, 0},
	{-1, -1, 1, 0},
	{-1, -1, -1, 0},
}

// sqrt(2)/sqrt(3)
const rt2rt3 = 0.816496580927726

// flowU and flowV are blended by the cosine and sine of the flow angle. At an
// angle of zero flowU is used as is.
var flowU = [16]mgl32.Vec3{
	{1, 0, 1},
	{0, 1, 1},
	{-1, 0, 1},
	{0, -1, 1},
	{1, 0, -1},
	{0, 1, -1},
	{-1, 0, -1},
	{0, -1, -1},
	{rt2rt3, rt2rt3, rt2rt3},
	{-rt2rt3, rt2rt3, -rt2rt3},
	{-rt2rt3, -rt2rt3, rt2rt3},
	{rt2rt3, -rt2rt3, -rt2rt3},
	{-rt2rt3, rt2rt3, rt2rt3},
	{rt2rt3, -rt2rt3, rt2rt3},
	{rt2rt3, -rt2rt3, -rt2rt3},
	{-rt2rt3, rt2rt3, -rt2rt3},
}

var flowV = [16]mgl32.Vec3{
	{-rt2rt3, rt2rt3, rt2rt3},
	{-rt2rt3, -rt2rt3, rt2rt3},
	{rt2rt3, -rt2rt3, rt2rt3},
	{rt2rt3, rt2rt3, rt2rt3},
	{-rt2rt3, -rt2rt3, -rt2rt3},
	{rt2rt3, -rt2rt3, -rt2rt3},
	{rt2rt3, rt2rt3, -rt2rt3},
	{-rt2rt3, rt2rt3, -rt2rt3},
	{1, -1, 0},
	{1, 1, 0},
	{-1, 1, 0},
	{-1, -1, 0},
	{1, 0, 1},
	{-1, 0, 1},
	{0, 1, -1},
	{0, -1, -1},
}

// mix folds three words into one using the final rounds of Bob Jenkins'
// lookup3. The right half of each rotation is a signed shift; changing it
// would change which gradient every corner gets.
func mix(a, b, c int32) int32 {
	c ^= b
	c -= b<<14 | b>>18
	a ^= c
	a -= c<<11 | c>>21
	b ^= a
	b -= a<<25 | a>>7
	c ^= b
	c -= b<<16 | b>>16
	a ^= c
	a -= c<<4 | c>>28
	b ^= a
	b -= a<<14 | a>>18
	c ^= b
	c -= b<<24 | b>>8
	return c
}

func hash2(i, j, seed int32) int32 {
	return mix(i, j, seed) & 7
}

func hash3(i, j, k, seed int32) int32 {
	return mix(i, j, mix(k, seed, 0)) & 15
}

func hash4(i, j, k, l, seed int32) int32 {
	return mix(i, j, mix(k, l, seed)) & 31
}

func gradient2(i, j, seed int32) mgl32.Vec2 {
	return grad2[hash2(i, j, seed)]
}

func gradient3(i, j, k, seed int32) mgl32.Vec3 {
	return grad3[hash3(i, j, k, seed)]
}

func gradient4(i, j, k, l, seed int32) mgl32.Vec4 {
	return grad4[hash4(i, j, k, l, seed)]
}

// rotator picks the gradient of a flow noise corner.
type rotator struct {
	cos, sin float32
}

func (r rotator) gradient2(i, j, seed int32) mgl32.Vec2 {
	g := grad2[hash2(i, j, seed)]
	return mgl32.Vec2{
		r.cos*g[0] - r.sin*g[1],
		r.cos*g[1] + r.sin*g[0],
	}
}

func (r rotator) gradient3(i, j, k, seed int32) mgl32.Vec3 {
	h := hash3(i, j, k, seed)
	u, v := flowU[h], flowV[h]
	return mgl32.Vec3{
		r.cos*u[0] + r.sin*v[0],
		r.cos*u[1] + r.sin*v[1],
		r.cos*u[2] + r.sin*v[2],
	}
}
