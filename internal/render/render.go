// Package render draws a validated ChartSpec into a PNG image using
// gonum/plot. Rendering is pure: bytes in, bytes out, no file I/O.
package render

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/chartspec"
)

// Options controls the output image geometry.
type Options struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns the standard 8x6 inch canvas (768x576 px at the
// default PNG DPI).
func DefaultOptions() Options {
	return Options{
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

const histogramBins = 16

// Chart renders the spec to PNG bytes.
func Chart(spec *chartspec.ChartSpec, opts Options) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultOptions()
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XAxisTitle
	p.Y.Label.Text = spec.YAxisTitle
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var err error
	switch spec.Kind {
	case chartspec.KindBar, chartspec.KindGroupedBar:
		err = addBars(p, spec)
	case chartspec.KindLine:
		err = addLines(p, spec, false)
	case chartspec.KindArea:
		err = addLines(p, spec, true)
	case chartspec.KindScatter:
		err = addScatter(p, spec)
	case chartspec.KindHistogram:
		err = addHistogram(p, spec)
	default:
		return nil, fmt.Errorf("cannot render chart kind %q", spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	return writePNG(p, opts)
}

func addBars(p *plot.Plot, spec *chartspec.ChartSpec) error {
	barWidth := vg.Points(20)
	if len(spec.Series) > 1 {
		barWidth = vg.Points(36 / float64(len(spec.Series)))
	}

	for i, ser := range spec.Series {
		bars, err := plotter.NewBarChart(plotter.Values(ser.Y), barWidth)
		if err != nil {
			return fmt.Errorf("bar series %q: %w", ser.Name, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		// Center the group of bars on each category tick.
		bars.Offset = barWidth*vg.Length(i) - barWidth*vg.Length(len(spec.Series)-1)/2
		p.Add(bars)
		if len(spec.Series) > 1 {
			p.Legend.Add(ser.Name, bars)
		}
	}

	p.NominalX(spec.Categories...)
	return nil
}

func addLines(p *plot.Plot, spec *chartspec.ChartSpec, fill bool) error {
	for i, ser := range spec.Series {
		line, err := plotter.NewLine(seriesXYs(ser))
		if err != nil {
			return fmt.Errorf("line series %q: %w", ser.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		if fill {
			line.FillColor = plotutil.Color(i)
		}
		p.Add(line)
		if len(spec.Series) > 1 {
			p.Legend.Add(ser.Name, line)
		}
	}
	return nil
}

func addScatter(p *plot.Plot, spec *chartspec.ChartSpec) error {
	for i, ser := range spec.Series {
		scatter, err := plotter.NewScatter(seriesXYs(ser))
		if err != nil {
			return fmt.Errorf("scatter series %q: %w", ser.Name, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		if len(spec.Series) > 1 {
			p.Legend.Add(ser.Name, scatter)
		}
	}
	return nil
}

func addHistogram(p *plot.Plot, spec *chartspec.ChartSpec) error {
	ser := spec.Series[0]
	hist, err := plotter.NewHist(plotter.Values(ser.Y), histogramBins)
	if err != nil {
		return fmt.Errorf("histogram series %q: %w", ser.Name, err)
	}
	hist.FillColor = plotutil.Color(0)
	p.Add(hist)
	return nil
}

func seriesXYs(ser chartspec.Series) plotter.XYs {
	pts := make(plotter.XYs, len(ser.Y))
	for i := range ser.Y {
		pts[i].X = ser.X[i]
		pts[i].Y = ser.Y[i]
	}
	return pts
}

func writePNG(p *plot.Plot, opts Options) ([]byte, error) {
	w, err := p.WriterTo(opts.Width, opts.Height, "png")
	if err != nil {
		return nil, fmt.Errorf("create png writer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return buf.Bytes(), nil
}
