// SPDX-License-Identifier: MIT

// Command fscfit builds a Fuzzy Spline Curve from CSV samples and writes it
// as JSON.
//
// Usage:
//
//	fscfit [-config params.yaml] [-in samples.csv] [-out curve.json] [-plot curve.png] [-v]
//
// Input rows are x,y,z,t or x,y,t with strictly increasing t. The optional
// YAML file overrides builder parameters:
//
//	degree: 3
//	knotInterval: 0.1
//	extrapolation: {order: 2, length: 0.1, interval: 0.01}
//	maxSpan: 0.01
//	resolution: 0.01
//	coefficients: {velocity: 0.01, acceleration: 0.0001}
//	seed: 1
//	solver: {maxIterations: 1000, history: 7, tolerance: 1e-14}
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/fsc/fuzzy"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "fscfit:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fscfit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML parameter file")
	inPath := fs.String("in", "-", "input CSV (- for stdin)")
	outPath := fs.String("out", "-", "output JSON (- for stdout)")
	plotPath := fs.String("plot", "", "write a PNG plot to this path")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}

	in := stdin
	if *inPath != "-" {
		f, err := os.Open(*inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	samples, err := ReadPoints(in)
	if err != nil {
		return err
	}
	logger.Debug("samples loaded", slog.Int("count", len(samples)))

	c, err := fuzzy.FromPoints(samples, append(cfg.Options(), fuzzy.WithLogger(logger))...)
	if err != nil {
		return err
	}

	out := stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err = WriteDocument(out, NewDocument(c)); err != nil {
		return fmt.Errorf("write curve: %w", err)
	}

	if *plotPath != "" {
		if err = SavePlot(*plotPath, samples, c); err != nil {
			return err
		}
		logger.Info("plot written", slog.String("path", *plotPath))
	}

	return nil
}
