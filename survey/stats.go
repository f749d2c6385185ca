// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package survey

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"
)

// Stats summarizes a set of noise samples.
type Stats struct {
	Count  int
	Min    float32
	Max    float32
	Mean   float32
	StdDev float32
	// OutOfRange is the fraction of values outside [-1, 1].
	OutOfRange float32
}

// Summarize computes the Stats of values. Empty input gives zero Stats.
func Summarize(values []float32) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	s := Stats{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}

	// Accumulate in float64 to keep large grids accurate.
	var sum float64
	outside := 0
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		sum += float64(v)
		if v < -1 || v > 1 {
			outside++
		}
	}
	mean := sum / float64(len(values))

	var squares float64
	for _, v := range values {
		d := float64(v) - mean
		squares += d * d
	}

	s.Mean = float32(mean)
	s.StdDev = math32.Sqrt(float32(squares / float64(len(values))))
	s.OutOfRange = float32(outside) / float32(len(values))
	return s
}

// Log writes s as one structured line.
func (s Stats) Log(logger *zap.Logger, name string) {
	logger.Info("noise survey",
		zap.String("name", name),
		zap.Int("count", s.Count),
		zap.Float32("min", s.Min),
		zap.Float32("max", s.Max),
		zap.Float32("mean", s.Mean),
		zap.Float32("stddev", s.StdDev),
		zap.Float32("outOfRange", s.OutOfRange))

	if s.OutOfRange > 0 {
		logger.Warn("noise outside [-1, 1]", zap.String("name", name), zap.Float32("fraction", s.OutOfRange))
	}
}
