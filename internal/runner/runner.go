// Package runner drives a generation run: it calls the pipeline once per
// requested sample, renders each chart, and hands the results to the
// exporter.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/export"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/pipeline"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/render"
)

// Options configures a run.
type Options struct {
	ChartType  string
	Language   string
	NumSamples int

	// NoExport skips writing any files; samples are generated and
	// rendered but discarded.
	NoExport bool
	// OutputDir is the base directory run directories are created under.
	OutputDir string
	// XLSX additionally writes a data.xlsx workbook into the run directory.
	XLSX bool

	// Progress receives human-readable progress lines. Defaults to
	// discarding them.
	Progress io.Writer
}

// Result summarizes a completed run.
type Result struct {
	Requested int
	Succeeded int
	Failed    int
	RunDir    string // empty when export was skipped
	Elapsed   time.Duration
}

// ErrNoSamples is returned when every requested sample failed.
var ErrNoSamples = errors.New("no samples were generated successfully")

// Run generates opts.NumSamples samples sequentially. A sample that
// fails is reported and skipped; Run fails only if nothing succeeds.
func Run(ctx context.Context, p pipeline.Pipeline, opts Options) (*Result, error) {
	if opts.NumSamples < 1 {
		return nil, fmt.Errorf("num_samples must be at least 1, got %d", opts.NumSamples)
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	var writer *export.Writer
	if !opts.NoExport {
		w, err := export.NewWriter(opts.OutputDir, p.Name())
		if err != nil {
			return nil, err
		}
		writer = w
		defer writer.Close()
	}

	start := time.Now()
	res := &Result{Requested: opts.NumSamples}
	var exported []*pipeline.Sample

	for i := 0; i < opts.NumSamples; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprintf(progress, "[%d/%d] generating %s (%s)\n", i+1, opts.NumSamples, opts.ChartType, opts.Language)

		sample, png, err := generateOne(ctx, p, opts, i)
		if err != nil {
			res.Failed++
			fmt.Fprintf(progress, "warning: sample %d failed: %v\n", i+1, err)
			continue
		}

		if writer != nil {
			imageName, err := writer.Write(sample, png)
			if err != nil {
				return nil, fmt.Errorf("export sample %d: %w", i+1, err)
			}
			fmt.Fprintf(progress, "[%d/%d] wrote %s\n", i+1, opts.NumSamples, imageName)
			exported = append(exported, sample)
		}
		res.Succeeded++
	}

	if res.Succeeded == 0 {
		return nil, fmt.Errorf("%w (%d attempted)", ErrNoSamples, res.Requested)
	}

	if writer != nil {
		res.RunDir = writer.Dir()
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("close exporter: %w", err)
		}
		if opts.XLSX {
			path := filepath.Join(res.RunDir, "data.xlsx")
			if err := export.WriteWorkbook(path, exported); err != nil {
				return nil, err
			}
			fmt.Fprintf(progress, "wrote %s\n", path)
		}
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

func generateOne(ctx context.Context, p pipeline.Pipeline, opts Options, index int) (*pipeline.Sample, []byte, error) {
	sample, err := p.Generate(ctx, pipeline.Request{
		ChartType: opts.ChartType,
		Language:  opts.Language,
		Index:     index,
	})
	if err != nil {
		return nil, nil, err
	}

	png, err := render.Chart(&sample.Chart, render.DefaultOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("render chart: %w", err)
	}
	return sample, png, nil
}
