// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build simplexdebug

package simplex

import "fmt"

// assertRanks panics if code selected one of the unreachable entries of
// ranks4, which would mean code4 and the table disagree.
func assertRanks(code uint8, r *[4]uint8) {
	var seen uint8
	for _, rank := range r {
		seen |= 1 << rank
	}
	if seen != 0xf {
		panic(fmt.Sprintf("simplex: comparison code %#02x selected invalid ranks %v", code, *r))
	}
}
