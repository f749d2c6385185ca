// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package field puts the noise algorithms of this module and of a few other
// libraries behind one set of interfaces, and builds them from JSON config.
package field

import "github.com/go-gl/mathgl/mgl32"

// Source2 is a scalar noise field over the plane.
// All implementations in this package may be called concurrently.
type Source2 interface {
	Eval2(v mgl32.Vec2) float32
}

// Source3 is a scalar noise field over space.
type Source3 interface {
	Eval3(v mgl32.Vec3) float32
}

// Source4 is a scalar noise field over 4 dimensions, usually space and time.
type Source4 interface {
	Eval4(v mgl32.Vec4) float32
}

// Scale2 multiplies coordinates by frequency before passing them to src.
// A frequency of 1 returns src as is.
func Scale2(src Source2, frequency float32) Source2 {
	if frequency == 1 {
		return src
	}
	return scaled{src2: src, frequency: frequency}
}

func Scale3(src Source3, frequency float32) Source3 {
	if frequency == 1 {
		return src
	}
	return scaled{src3: src, frequency: frequency}
}

func Scale4(src Source4, frequency float32) Source4 {
	if frequency == 1 {
		return src
	}
	return scaled{src4: src, frequency: frequency}
}

// scaled only has the source of the dimension it was made for.
type scaled struct {
	src2      Source2
	src3      Source3
	src4      Source4
	frequency float32
}

func (s scaled) Eval2(v mgl32.Vec2) float32 {
	return s.src2.Eval2(v.Mul(s.frequency))
}

func (s scaled) Eval3(v mgl32.Vec3) float32 {
	return s.src3.Eval3(v.Mul(s.frequency))
}

func (s scaled) Eval4(v mgl32.Vec4) float32 {
	return s.src4.Eval4(v.Mul(s.frequency))
}
