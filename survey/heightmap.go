// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package survey

import "github.com/SoftbearStudios/simplex/geom"

// Heightmap quantizes noise values from [-1, 1] to bytes, one per value.
// Values outside the range saturate.
func Heightmap(values []float32) []byte {
	buf := make([]byte, len(values))
	for i, v := range values {
		buf[i] = clampToByte(geom.MapRanges(v, -1, 1, 0, 255, false) + 0.5)
	}
	return buf
}

func clampToByte(f float32) byte {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return byte(f)
}
