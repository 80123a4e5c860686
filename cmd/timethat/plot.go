package main

import (
	"path/filepath"
	"strings"

	"github.com/Doist/timethat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// writePlot renders the benchmark's iteration times as a line plot PNG.
func writePlot(path string, b *timethat.Benchmark) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = b.Name
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "seconds"

	if err := plotutil.AddLinePoints(p, "Iteration times", resultsToXYs(b.Results())); err != nil {
		return err
	}

	return p.Save(10*vg.Inch, 10*vg.Inch, path)
}

func resultsToXYs(results []float64) plotter.XYs {
	points := make(plotter.XYs, len(results))
	for i := range points {
		points[i].X = float64(i + 1)
		points[i].Y = results[i]
	}
	return points
}

// plotPathFor keeps one plot file per benchmark when several benchmarks share
// a configured plot path: "out.png" becomes "out_my_benchmark.png".
func plotPathFor(path, benchmark string) string {
	ext := filepath.Ext(path)
	name := strings.ReplaceAll(benchmark, " ", "_")
	return strings.TrimSuffix(path, ext) + "_" + name + ext
}
