// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package field

import (
	"github.com/SoftbearStudios/simplex/geom"
	"github.com/pkg/errors"
)

// Kind names a noise algorithm.
type Kind string

const (
	KindSimplex     = Kind("simplex")
	KindFractal     = Kind("fractal")
	KindFlow        = Kind("flow")
	KindPerlin      = Kind("perlin")
	KindOpenSimplex = Kind("opensimplex")
)

// Config describes a noise source. Zero fields take the defaults of
// DefaultConfig, except Angle, where zero is a valid angle.
type Config struct {
	Kind        Kind       `json:"kind"`
	Seed        int32      `json:"seed"`
	Octaves     int        `json:"octaves,omitempty"`     // fractal and perlin
	Amplitude   float32    `json:"amplitude,omitempty"`   // fractal
	Lacunarity  float32    `json:"lacunarity,omitempty"`  // fractal and perlin
	Persistence float32    `json:"persistence,omitempty"` // fractal and perlin
	Angle       geom.Angle `json:"angle,omitempty"`       // flow
	Frequency   float32    `json:"frequency,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Kind:        KindSimplex,
		Octaves:     4,
		Amplitude:   1,
		Lacunarity:  2,
		Persistence: 0.5,
		Frequency:   1,
	}
}

// withDefaults fills in zero fields.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Kind == "" {
		c.Kind = d.Kind
	}
	if c.Octaves == 0 {
		c.Octaves = d.Octaves
	}
	if c.Amplitude == 0 {
		c.Amplitude = d.Amplitude
	}
	if c.Lacunarity == 0 {
		c.Lacunarity = d.Lacunarity
	}
	if c.Persistence == 0 {
		c.Persistence = d.Persistence
	}
	if c.Frequency == 0 {
		c.Frequency = d.Frequency
	}
	return c
}

func (c Config) fractal() Fractal {
	return Fractal{
		Seed:        c.Seed,
		Octaves:     c.Octaves,
		Amplitude:   c.Amplitude,
		Lacunarity:  c.Lacunarity,
		Persistence: c.Persistence,
	}
}

func (c Config) perlin() *Perlin {
	return NewPerlin(int64(c.Seed), c.Octaves, c.Lacunarity, c.Persistence)
}

// Source2 builds the 2D source c describes.
func (c Config) Source2() (Source2, error) {
	c = c.withDefaults()

	var src Source2
	switch c.Kind {
	case KindSimplex:
		src = Simplex{Seed: c.Seed}
	case KindFractal:
		src = c.fractal()
	case KindFlow:
		src = Flow{Seed: c.Seed, Angle: c.Angle}
	case KindPerlin:
		src = c.perlin()
	case KindOpenSimplex:
		src = NewOpenSimplex(int64(c.Seed))
	default:
		return nil, errors.Errorf("unknown noise kind %q", c.Kind)
	}
	return Scale2(src, c.Frequency), nil
}

// Source3 builds the 3D source c describes.
func (c Config) Source3() (Source3, error) {
	c = c.withDefaults()

	var src Source3
	switch c.Kind {
	case KindSimplex:
		src = Simplex{Seed: c.Seed}
	case KindFractal:
		src = c.fractal()
	case KindFlow:
		src = Flow{Seed: c.Seed, Angle: c.Angle}
	case KindPerlin:
		src = c.perlin()
	case KindOpenSimplex:
		src = NewOpenSimplex(int64(c.Seed))
	default:
		return nil, errors.Errorf("unknown noise kind %q", c.Kind)
	}
	return Scale3(src, c.Frequency), nil
}

// Source4 builds the 4D source c describes. Flow and perlin noise have no 4D
// form.
func (c Config) Source4() (Source4, error) {
	c = c.withDefaults()

	var src Source4
	switch c.Kind {
	case KindSimplex:
		src = Simplex{Seed: c.Seed}
	case KindFractal:
		src = c.fractal()
	case KindOpenSimplex:
		src = NewOpenSimplex(int64(c.Seed))
	case KindFlow, KindPerlin:
		return nil, errors.Errorf("noise kind %q has no 4D form", c.Kind)
	default:
		return nil, errors.Errorf("unknown noise kind %q", c.Kind)
	}
	return Scale4(src, c.Frequency), nil
}
