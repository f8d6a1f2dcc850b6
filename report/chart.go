// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/msgperf/msgperf/benchagg"
	"github.com/msgperf/msgperf/benchunit"
)

const chartDPI = 96

// Charts writes a PNG bar chart of each section of r into dir, named
// after the section's test mode, and returns the paths written.
// Throughput sections chart the message rate and latency sections
// chart the mean run duration. Versions whose value is infinite or
// invalid are left out, and a section with nothing left to chart is
// skipped.
func (r *Report) Charts(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	var paths []string
	for _, s := range r.Sections {
		pl, ok, err := s.chart()
		if err != nil {
			return paths, err
		}
		if !ok {
			continue
		}
		path := filepath.Join(dir, chartName(s.Mode)+".png")
		if err := savePNG(pl, path, len(s.Summaries)); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// chart builds the bar chart of s. ok is false if s has no finite
// values.
func (s *Section) chart() (pl *plot.Plot, ok bool, err error) {
	var values plotter.Values
	var names []string
	for _, sum := range s.Summaries {
		v := sum.ComputeRate()
		if s.Kind == benchagg.Latency {
			v = sum.MeanMillis
		}
		x := v.Float()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		values = append(values, x)
		names = append(names, sum.Version)
	}
	if len(values) == 0 {
		return nil, false, nil
	}

	pl = plot.New()
	pl.Title.Text = strings.ToUpper(s.Title)
	pl.Y.Label.Text = benchunit.RateUnit
	if s.Kind == benchagg.Latency {
		pl.Y.Label.Text = benchunit.MillisUnit
	}
	pl.Y.Min = 0

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, false, err
	}
	bars.Color = color.RGBA{R: 0x37, G: 0x7e, B: 0xb8, A: 0xff}
	bars.LineStyle.Width = vg.Length(0)
	pl.Add(bars)
	pl.NominalX(names...)
	pl.X.Tick.Label.Rotation = -math.Pi / 8
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XLeft
	return pl, true, nil
}

func savePNG(pl *plot.Plot, path string, bars int) error {
	width := vg.Length(2+bars) * vg.Centimeter * 1.5
	if width < 10*vg.Centimeter {
		width = 10 * vg.Centimeter
	}
	height := 8 * vg.Centimeter

	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height),
		vgimg.UseDPI(chartDPI), vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// chartName makes mode safe to use as a file name.
func chartName(mode string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, mode)
	if name == "" {
		name = "_"
	}
	return name
}
