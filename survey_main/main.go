// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/SoftbearStudios/simplex/field"
	"github.com/SoftbearStudios/simplex/geom"
	"github.com/SoftbearStudios/simplex/survey"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath string
		csvPath    string
		outPath    string
		name       string
		region     string
		width      int
		height     int
	)

	flag.StringVar(&configPath, "config", "", "noise config JSON file (default plain simplex, seed 0)")
	flag.StringVar(&csvPath, "csv", "", "append the summary to this CSV file")
	flag.StringVar(&outPath, "out", "", "write the samples as a raw 8 bit heightmap to this file")
	flag.StringVar(&name, "name", "noise", "name to log the summary under")
	flag.StringVar(&region, "region", "0,0,16,16", "sampled region as x,y,width,height")
	flag.IntVar(&width, "width", 512, "samples per row")
	flag.IntVar(&height, "height", 512, "rows of samples")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not create logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, configPath, csvPath, outPath, name, region, width, height); err != nil {
		logger.Error("survey failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger, configPath, csvPath, outPath, name, region string, width, height int) error {
	config := field.DefaultConfig()
	if configPath != "" {
		var err error
		if config, err = field.Load(configPath); err != nil {
			return err
		}
	}

	aabb, err := parseRegion(region)
	if err != nil {
		return err
	}

	src, err := config.Source2()
	if err != nil {
		return err
	}

	logger.Info("sampling",
		zap.String("name", name),
		zap.String("kind", string(config.Kind)),
		zap.Int32("seed", config.Seed),
		zap.Int("width", width),
		zap.Int("height", height))

	values, err := survey.Grid2(ctx, src, aabb, width, height)
	if err != nil {
		return err
	}

	stats := survey.Summarize(values)
	stats.Log(logger, name)
	logger.Info("slope",
		zap.String("name", name),
		zap.Float32("max", survey.MaxSlope(values, width, aabb.Width/float32(width), aabb.Height/float32(height))))

	if csvPath != "" {
		if err := stats.AppendCSV(csvPath, name); err != nil {
			return err
		}
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, survey.Heightmap(values), 0644); err != nil {
			return errors.Wrap(err, "could not write heightmap")
		}
	}
	return nil
}

func parseRegion(s string) (geom.AABB, error) {
	var x, y, w, h float32
	if _, err := fmt.Sscanf(s, "%f,%f,%f,%f", &x, &y, &w, &h); err != nil {
		return geom.AABB{}, errors.Wrapf(err, "invalid region %q", s)
	}
	if w <= 0 || h <= 0 {
		return geom.AABB{}, errors.Errorf("invalid region %q: size must be positive", s)
	}
	return geom.AABBFrom(x, y, w, h), nil
}
