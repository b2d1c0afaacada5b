// Package plotting renders experiment curves to image files.
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one named curve or point set.
type Series struct {
	Name   string
	Points [][2]float64
}

// Figure describes one output image.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	// Lines are drawn as connected curves, Scatters as unconnected
	// points.
	Lines    []Series
	Scatters []Series

	// LogY switches the Y axis to a logarithmic scale.
	LogY bool
}

func toXYs(points [][2]float64) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt[0]
		xys[i].Y = pt[1]
	}
	return xys
}

// Save renders the figure to the given file. The format follows the file
// extension; PNG is the usual choice.
func (f Figure) Save(path string) error {
	if len(f.Lines) == 0 && len(f.Scatters) == 0 {
		return fmt.Errorf("figure %q has no data", f.Title)
	}

	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Add(plotter.NewGrid())

	if f.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	styleIdx := 0
	for _, s := range f.Lines {
		line, err := plotter.NewLine(toXYs(s.Points))
		if err != nil {
			return fmt.Errorf("line %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(styleIdx)
		styleIdx++

		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	for _, s := range f.Scatters {
		scatter, err := plotter.NewScatter(toXYs(s.Points))
		if err != nil {
			return fmt.Errorf("scatter %q: %w", s.Name, err)
		}
		scatter.Color = plotutil.Color(styleIdx)
		styleIdx++

		p.Add(scatter)
		p.Legend.Add(s.Name, scatter)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save figure %q: %w", f.Title, err)
	}

	return nil
}
