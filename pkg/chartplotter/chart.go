package chartplotter

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

const (
	width  = 16 * vg.Centimeter
	height = 10 * vg.Centimeter
)

type canvas interface {
	vg.CanvasSizer
	io.WriterTo
}

// MakeScatterPlot draws values against their index, keeping at most
// maxPoints leading values when maxPoints is positive.
func MakeScatterPlot(values []float64, title, yLabel, filename string, maxPoints int) error {
	if maxPoints > 0 && len(values) > maxPoints {
		values = values[:maxPoints]
	}

	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i), Y: v})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "i"
	p.Y.Label.Text = yLabel

	if len(pts) > 0 {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("failed to build scatter: %w", err)
		}
		s.GlyphStyle.Color = color.RGBA{B: 200, A: 255}
		s.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(s, plotter.NewGrid())
	}

	return save(p, filename)
}

// MakeHistogramPlot draws the frequency of each interval as a bar labelled
// with its lower boundary.
func MakeHistogramPlot(intervals []float64, frequencies []int, title, filename string) error {
	if len(intervals) != len(frequencies) {
		return fmt.Errorf("intervals and frequencies differ in length: %d != %d", len(intervals), len(frequencies))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Interval"
	p.Y.Label.Text = "Frequency"

	if len(frequencies) > 0 {
		vals := make(plotter.Values, len(frequencies))
		labels := make([]string, len(intervals))
		for i, f := range frequencies {
			vals[i] = float64(f)
			labels[i] = fmt.Sprintf("%.2f", intervals[i])
		}

		bars, err := plotter.NewBarChart(vals, barWidth(len(vals)))
		if err != nil {
			return fmt.Errorf("failed to build bar chart: %w", err)
		}
		pal := palette.Rainbow(len(vals)+1, palette.Blue, palette.Red, 1, 1, 1)
		bars.Color = pal.Colors()[len(vals)/2]
		bars.LineStyle.Width = vg.Length(0)

		p.Add(bars)
		p.NominalX(labels...)
	}

	return save(p, filename)
}

func barWidth(n int) vg.Length {
	w := (width - 2*vg.Centimeter) / vg.Length(n+1)
	if w < vg.Points(1) {
		return vg.Points(1)
	}
	return w
}

// save writes a PDF for ".pdf" file names and a PNG otherwise.
func save(p *plot.Plot, filename string) error {
	var c canvas
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		c = vgpdf.New(width, height)
	} else {
		c = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	}

	p.Draw(draw.New(c))

	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err = c.WriteTo(w); err != nil {
		return err
	}
	return nil
}
