// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package survey samples noise sources over regions and summarizes what comes
// out, for tuning configs and checking that a source behaves.
package survey

import (
	"context"
	"runtime"

	"github.com/SoftbearStudios/simplex/field"
	"github.com/SoftbearStudios/simplex/geom"
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Grid2 samples src at the centers of a width by height grid of cells
// covering region. Values are row major, row 0 being at region.Min. Rows are
// evaluated concurrently.
func Grid2(ctx context.Context, src field.Source2, region geom.AABB, width, height int) ([]float32, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid grid size %dx%d", width, height)
	}

	values := make([]float32, width*height)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for j := 0; j < height; j++ {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v := (float32(j) + 0.5) / float32(height)
			row := values[j*width : (j+1)*width]
			for i := range row {
				row[i] = src.Eval2(region.At((float32(i)+0.5)/float32(width), v))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "grid sampling stopped")
	}
	return values, nil
}

// Gradient2 returns the steepest slope between neighbouring samples of a
// Grid2 of src, in value per unit distance.
func Gradient2(ctx context.Context, src field.Source2, region geom.AABB, width, height int) (float32, error) {
	values, err := Grid2(ctx, src, region, width, height)
	if err != nil {
		return 0, err
	}
	return MaxSlope(values, width, region.Width/float32(width), region.Height/float32(height)), nil
}

// MaxSlope returns the steepest slope between horizontally or vertically
// adjacent values of a row major grid with cells dx by dy.
func MaxSlope(values []float32, width int, dx, dy float32) float32 {
	var slope float32
	for n, value := range values {
		if (n+1)%width != 0 && n+1 < len(values) {
			slope = max(slope, math32.Abs(values[n+1]-value)/dx)
		}
		if n+width < len(values) {
			slope = max(slope, math32.Abs(values[n+width]-value)/dy)
		}
	}
	return slope
}
