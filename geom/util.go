// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package geom holds the small amount of float32 geometry shared by the noise
// packages: angles and sampling rectangles.
package geom

func Lerp(a, b, factor float32) float32 {
	return a + (b-a)*factor
}

func Clamp(val, minimum, maximum float32) float32 {
	return min(max(val, minimum), maximum)
}

// MapRanges maps number from [oldMin, oldMax] to [newMin, newMax].
func MapRanges(number, oldMin, oldMax, newMin, newMax float32, clampToRange bool) float32 {
	oldRange := oldMax - oldMin
	newRange := newMax - newMin
	numberNormalized := (number - oldMin) / oldRange
	mapped := newMin + numberNormalized*newRange
	if clampToRange {
		mapped = Clamp(mapped, newMin, newMax)
	}
	return mapped
}
