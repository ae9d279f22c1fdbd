// Package chart renders partisan-bias charts: one post-stepping seat
// curve per configured year, an actual-result marker per year, fixed
// reference lines at zero margin and half seat share, and a legend in
// year order.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"housebias/internal/bias"
	"housebias/internal/dataset"
)

const (
	xAxisLabel = "Average Democratic Vote Margin in US House Races (Two-Party Vote)"
	yAxisLabel = "Democratic Share of Seats in the US House"

	curveWidth = 3 // points, step curves and reference lines
)

// FigureSize is the physical size of a rendered figure.
type FigureSize struct {
	Width  vg.Length
	Height vg.Length
}

// Figure pairs a configured plot with the size it should be drawn at.
type Figure struct {
	Plot *plot.Plot
	Size FigureSize
}

// Save writes the figure to path; the format follows the file extension
// (.png, .svg, .pdf, ...).
func (f *Figure) Save(path string) error {
	return f.Plot.Save(f.Size.Width, f.Size.Height, path)
}

// Renderer draws partisan-bias charts from a loaded dataset. It holds no
// mutable state between calls; concurrent Draw calls are safe because
// each call builds its own plot and buffers.
type Renderer struct {
	ds *dataset.Dataset
}

// New returns a Renderer over ds.
func New(ds *dataset.Dataset) *Renderer {
	return &Renderer{ds: ds}
}

// Draw renders the chart for one state. Zero-valued opts fields take the
// defaults of DefaultOptions. A failed draw returns no figure.
func (r *Renderer) Draw(state string, size FigureSize, opts Options) (*Figure, error) {
	opts = opts.withDefaults()
	if opts.YTickCount < 2 {
		return nil, fmt.Errorf("%w: y tick count %d, need at least 2", ErrBadOptions, opts.YTickCount)
	}
	if _, ok := r.ds.DistrictCount(state); !ok {
		return nil, fmt.Errorf("%w: %q", bias.ErrUnknownState, state)
	}

	gridColor, err := lookupColor(opts.GridColor)
	if err != nil {
		return nil, err
	}
	gridDashes, err := dashPattern(opts.GridLineStyle)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel
	p.X.Min, p.X.Max = -1, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks(opts.YTickCount))

	grid := plotter.NewGrid()
	gridStyle := draw.LineStyle{
		Color:  gridColor,
		Width:  vg.Points(opts.GridLineWidth),
		Dashes: gridDashes,
	}
	grid.Vertical = gridStyle
	grid.Horizontal = gridStyle
	p.Add(grid)

	// Reference lines: seat share 0.5 across the margin domain, and
	// zero margin across the seat-share range.
	if err := addRefLine(p, plotter.XYs{{X: -1, Y: 0.5}, {X: 1, Y: 0.5}}); err != nil {
		return nil, err
	}
	if err := addRefLine(p, plotter.XYs{{X: 0, Y: 0}, {X: 0, Y: 1}}); err != nil {
		return nil, err
	}

	for _, year := range r.ds.Years() {
		curve, err := bias.Compute(r.ds, state, year)
		if err != nil {
			return nil, err
		}
		name, ok := r.ds.Color(year)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrNoColorForYear, year)
		}
		yearColor, err := lookupColor(name)
		if err != nil {
			return nil, err
		}
		if err := addCurve(p, curve, yearColor, opts); err != nil {
			return nil, err
		}
	}

	return &Figure{Plot: p, Size: size}, nil
}

// addCurve draws one year's step curve, actual-result marker, and legend
// entry.
func addCurve(p *plot.Plot, curve *bias.Curve, yearColor color.RGBA, opts Options) error {
	xys := make(plotter.XYs, len(curve.Margins))
	for i := range curve.Margins {
		xys[i].X = curve.Margins[i]
		xys[i].Y = curve.SeatShares[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.StepStyle = plotter.PostStep
	line.LineStyle = draw.LineStyle{
		Color: withAlpha(yearColor, opts.StepOpacity),
		Width: vg.Points(curveWidth),
	}
	p.Add(line)
	p.Legend.Add(curve.LegendLabel(), line)

	marker, err := plotter.NewScatter(plotter.XYs{{X: curve.ActualMargin, Y: curve.SeatShare()}})
	if err != nil {
		return err
	}
	marker.GlyphStyle = draw.GlyphStyle{
		Color:  yearColor,
		Radius: markerRadius(opts.MarkerSize),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(marker)
	return nil
}

func addRefLine(p *plot.Plot, xys plotter.XYs) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle = draw.LineStyle{
		Color: color.Black,
		Width: vg.Points(curveWidth),
	}
	p.Add(line)
	return nil
}

// yTicks spaces n labeled ticks evenly across [0, 1].
func yTicks(n int) []plot.Tick {
	ticks := make([]plot.Tick, n)
	for i := 0; i < n; i++ {
		v := float64(i) / float64(n-1)
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return ticks
}

// markerRadius converts a scatter size (area in points squared) to a
// glyph radius.
func markerRadius(size float64) vg.Length {
	return vg.Points(math.Sqrt(size / math.Pi))
}
