// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package simplex

// ranks4 maps the 6-bit comparison code built by order4 to the rank of each
// axis, 3 being the largest offset. Only 24 codes can be produced by comparing
// four numbers; the other 40 entries are unreachable and hold {0, 0, 0, 0}.
var ranks4 = [64][4]uint8{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 0, 0, 0}, {0, 2, 3, 1},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {1, 2, 3, 0},
	{0, 2, 1, 3}, {0, 0, 0, 0}, {0, 3, 1, 2}, {0, 3, 2, 1},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {1, 3, 2, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{1, 2, 0, 3}, {0, 0, 0, 0}, {1, 3, 0, 2}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {2, 3, 0, 1}, {2, 3, 1, 0},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {2, 0, 3, 1}, {0, 0, 0, 0}, {2, 1, 3, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{2, 0, 1, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{3, 0, 1, 2}, {3, 0, 2, 1}, {0, 0, 0, 0}, {3, 1, 2, 0},
	{2, 1, 0, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{3, 1, 0, 2}, {0, 0, 0, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

// corner holds the 0/1 lattice step of a corner relative to the base cell.
type corner2 [2]int32
type corner3 [3]int32
type corner4 [4]int32

// order2 returns the middle corner of the triangle containing (x0, y0).
func order2(x0, y0 float32) corner2 {
	if x0 > y0 {
		return corner2{1, 0}
	}
	return corner2{0, 1}
}

// order3 returns the second and third corners of the tetrahedron containing
// (x0, y0, z0), walking the axes from largest offset to smallest.
func order3(x0, y0, z0 float32) (c1, c2 corner3) {
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			return corner3{1, 0, 0}, corner3{1, 1, 0}
		case x0 >= z0:
			return corner3{1, 0, 0}, corner3{1, 0, 1}
		default:
			return corner3{0, 0, 1}, corner3{1, 0, 1}
		}
	}
	switch {
	case y0 < z0:
		return corner3{0, 0, 1}, corner3{0, 1, 1}
	case x0 < z0:
		return corner3{0, 1, 0}, corner3{0, 1, 1}
	default:
		return corner3{0, 1, 0}, corner3{1, 1, 0}
	}
}

// code4 packs the six pairwise comparisons of the offsets into an index of
// ranks4. The bit assignment must match the table.
func code4(x0, y0, z0, w0 float32) uint8 {
	var c uint8
	if x0 > y0 {
		c |= 0x20
	}
	if x0 > z0 {
		c |= 0x10
	}
	if y0 > z0 {
		c |= 0x08
	}
	if x0 > w0 {
		c |= 0x04
	}
	if y0 > w0 {
		c |= 0x02
	}
	if z0 > w0 {
		c |= 0x01
	}
	return c
}

// order4 returns the three middle corners of the pentachoron containing the
// offsets. Each corner includes every axis of the corner before it.
func order4(x0, y0, z0, w0 float32) (c1, c2, c3 corner4) {
	code := code4(x0, y0, z0, w0)
	r := &ranks4[code]
	assertRanks(code, r)

	for axis, rank := range r {
		if rank >= 3 {
			c1[axis] = 1
		}
		if rank >= 2 {
			c2[axis] = 1
		}
		if rank >= 1 {
			c3[axis] = 1
		}
	}
	return
}
