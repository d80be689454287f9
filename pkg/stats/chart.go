package stats

import (
	"path/filepath"

	"gitlab.com/tozd/go/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart files written by SaveCharts.
const (
	ChartWorldIndex = "world_index.png"
	ChartTopPeak    = "top_peak.png"
)

// SaveCharts draws the world population index and the population of the top
// countries by peak into dir.
func (r *Report) SaveCharts(dir string) error {
	world := plot.New()
	world.Title.Text = r.WorldLabel + " population index"
	world.X.Label.Text = "Year"
	world.Y.Label.Text = "Index (first year = 100)"
	world.Add(plotter.NewGrid())

	if err := addLine(world, r.WorldLabel, r.WorldSeries, 0, func(o Observation) Value { return o.PopIndex }); err != nil {
		return err
	}
	if err := world.Save(10*vg.Inch, 6*vg.Inch, filepath.Join(dir, ChartWorldIndex)); err != nil {
		return errors.Errorf("saving world chart: %w", err)
	}

	top := plot.New()
	top.Title.Text = "Population of the most populous countries"
	top.X.Label.Text = "Year"
	top.Y.Label.Text = "Population"
	top.Legend.Top = true
	top.Legend.Left = true
	top.Add(plotter.NewGrid())

	groups := GroupByCountry(r.TopPeakSeries)
	for i, g := range groups {
		if err := addLine(top, g.Country, g.Rows, i, func(o Observation) Value { return Of(o.Population) }); err != nil {
			return err
		}
	}
	if err := top.Save(10*vg.Inch, 6*vg.Inch, filepath.Join(dir, ChartTopPeak)); err != nil {
		return errors.Errorf("saving top peak chart: %w", err)
	}
	return nil
}

func addLine(p *plot.Plot, name string, rows []Observation, color int, y func(Observation) Value) error {
	var pts plotter.XYs
	for _, o := range rows {
		v := y(o)
		if !v.Defined() {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(o.Year), Y: v.Float})
	}
	if len(pts) == 0 {
		return nil
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Errorf("plotting %s: %w", name, err)
	}
	line.Color = plotutil.Color(color)
	line.Width = vg.Points(2)

	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}
