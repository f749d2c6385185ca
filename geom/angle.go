// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package geom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Angle is in radians.
type Angle float32

const Pi = Angle(math32.Pi)

// ToAngle wraps radians into [-Pi, Pi).
func ToAngle(radians float32) Angle {
	return Angle(0).Diff(Angle(-radians))
}

// Degrees converts degrees to an Angle, wrapped into [-Pi, Pi).
func Degrees(degrees float32) Angle {
	return ToAngle(degrees * (math32.Pi / 180))
}

// ParseAngle reads radians ("1.57", "1.57rad") or degrees ("90deg").
func ParseAngle(text string) (Angle, error) {
	s := strings.TrimSpace(text)
	degrees := strings.HasSuffix(s, "deg")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "deg"), "rad")

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid angle %q", text)
	}
	if degrees {
		return Degrees(float32(f)), nil
	}
	return ToAngle(float32(f)), nil
}

func (angle Angle) Float() float32 {
	return float32(angle)
}

func (angle Angle) Sincos() (sin, cos float32) {
	return math32.Sincos(float32(angle))
}

// Vec2 is the unit vector pointing at angle.
func (angle Angle) Vec2() mgl32.Vec2 {
	sin, cos := angle.Sincos()
	return mgl32.Vec2{cos, sin}
}

func (angle Angle) Diff(otherAngle Angle) (difference Angle) {
	difference = angle - otherAngle
	const mod = Angle(math32.Pi * 2)

	// Skip the modulo in the common case
	if difference >= mod || difference < -mod {
		difference = Angle(math32.Mod(float32(difference), float32(mod)))
	}

	if difference < -Pi {
		difference += mod
	} else if difference >= Pi {
		difference -= mod
	}
	return
}

// Lerp takes the shorter way around.
func (angle Angle) Lerp(otherAngle Angle, factor float32) Angle {
	delta := otherAngle.Diff(angle)
	return angle + delta*Angle(factor)
}

func (angle Angle) Abs() Angle {
	return Angle(math32.Abs(float32(angle)))
}

func (angle Angle) String() string {
	return fmt.Sprintf("%.01f degrees", float32(angle)*180/math32.Pi)
}
