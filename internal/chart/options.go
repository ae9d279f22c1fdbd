package chart

// Options are the per-call style settings for Renderer.Draw. Zero-valued
// fields take the defaults below; DefaultOptions always returns a fresh
// value, so no call can leak a mutated default into the next one.
type Options struct {
	// GridColor is the gridline color name (default "k").
	GridColor string

	// MarkerSize is the actual-result marker size in scatter units,
	// area in points squared (default 200).
	MarkerSize float64

	// GridLineStyle is the gridline dash style: "-", "--", ":" or "-."
	// (default "-").
	GridLineStyle string

	// GridLineWidth is the gridline width in points (default 0.2).
	GridLineWidth float64

	// StepOpacity is the step curve's alpha in (0, 1] (default 0.6).
	StepOpacity float64

	// YTickCount is the number of evenly spaced y-axis ticks across
	// [0, 1] (default 11).
	YTickCount int
}

// DefaultOptions returns the pristine default settings.
func DefaultOptions() Options {
	return Options{
		GridColor:     "k",
		MarkerSize:    200,
		GridLineStyle: "-",
		GridLineWidth: 0.2,
		StepOpacity:   0.6,
		YTickCount:    11,
	}
}

// withDefaults fills zero-valued fields from DefaultOptions. Options is
// passed and returned by value, so the caller's struct and the defaults
// both stay untouched.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.GridColor == "" {
		o.GridColor = d.GridColor
	}
	if o.MarkerSize == 0 {
		o.MarkerSize = d.MarkerSize
	}
	if o.GridLineStyle == "" {
		o.GridLineStyle = d.GridLineStyle
	}
	if o.GridLineWidth == 0 {
		o.GridLineWidth = d.GridLineWidth
	}
	if o.StepOpacity == 0 {
		o.StepOpacity = d.StepOpacity
	}
	if o.YTickCount == 0 {
		o.YTickCount = d.YTickCount
	}
	return o
}
