// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package geom

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis aligned rectangle with its minimum corner at Min.
type AABB struct {
	Min    mgl32.Vec2 `json:"min"`
	Width  float32    `json:"width"`
	Height float32    `json:"height"`
}

func AABBFrom(x, y, width, height float32) AABB {
	return AABB{
		Min:    mgl32.Vec2{x, y},
		Width:  width,
		Height: height,
	}
}

// CenteredAABB returns the AABB of the given size centered on center.
func CenteredAABB(center mgl32.Vec2, width, height float32) AABB {
	return AABBFrom(center[0]-width*0.5, center[1]-height*0.5, width, height)
}

func (a AABB) Max() mgl32.Vec2 {
	return mgl32.Vec2{a.Min[0] + a.Width, a.Min[1] + a.Height}
}

func (a AABB) Center() mgl32.Vec2 {
	return a.At(0.5, 0.5)
}

// At returns the point at fractions u and v of the width and height.
func (a AABB) At(u, v float32) mgl32.Vec2 {
	return mgl32.Vec2{Lerp(a.Min[0], a.Min[0]+a.Width, u), Lerp(a.Min[1], a.Min[1]+a.Height, v)}
}

// Intersects a and b are intersecting
func (a AABB) Intersects(b AABB) bool {
	return a.Min[0]+a.Width >= b.Min[0] && a.Min[0] <= b.Min[0]+b.Width &&
		a.Min[1]+a.Height >= b.Min[1] && a.Min[1] <= b.Min[1]+b.Height
}

// Contains a fully contains b
func (a AABB) Contains(b AABB) bool {
	return a.Min[0] <= b.Min[0] && a.Min[1] <= b.Min[1] &&
		a.Min[0]+a.Width >= b.Min[0]+b.Width && a.Min[1]+a.Height >= b.Min[1]+b.Height
}

// ContainsPoint is true if p is inside a or on its edge.
func (a AABB) ContainsPoint(p mgl32.Vec2) bool {
	return p[0] >= a.Min[0] && p[1] >= a.Min[1] && p[0] <= a.Min[0]+a.Width && p[1] <= a.Min[1]+a.Height
}

// Quadrants All quadrants of a
func (a AABB) Quadrants() [4]AABB {
	var quadrants [4]AABB
	for i := range quadrants {
		quadrants[i] = a.Quadrant(i)
	}
	return quadrants
}

// Quadrant of a by index, clockwise from the minimum corner.
func (a AABB) Quadrant(quadrant int) AABB {
	pos := a.Min
	width := a.Width * 0.5
	height := a.Height * 0.5
	switch quadrant {
	case 1:
		pos[0] += width
	case 2:
		pos[0] += width
		pos[1] += height
	case 3:
		pos[1] += height
	}
	return AABB{Min: pos, Width: width, Height: height}
}
