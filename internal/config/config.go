// Package config holds the housebias configuration: input file paths,
// output settings, and chart style overrides. Settings come from a yaml
// file; absent fields keep their defaults.
package config

import (
	"fmt"
	"os"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"housebias/internal/chart"
	"housebias/internal/dataset"
)

// Config is the full configuration tree.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Output OutputConfig `yaml:"output"`
	Style  StyleConfig  `yaml:"style"`
}

// DataConfig names the input files.
type DataConfig struct {
	// House is the election results CSV.
	House string `yaml:"house"`

	// Districts is the whitespace-delimited "<state> <count>" file.
	Districts string `yaml:"districts"`

	// Years lists one year per line, in render order.
	Years string `yaml:"years"`

	// Colors lists one color name per line, aligned with Years.
	Colors string `yaml:"colors"`

	// DropColumns optionally lists results columns to remove, one per
	// line. Empty means no drop.
	DropColumns string `yaml:"drop_columns"`
}

// OutputConfig controls where and how charts are written.
type OutputConfig struct {
	// Dir is the output directory for rendered charts.
	Dir string `yaml:"dir"`

	// Format is the file extension passed to the plot backend
	// (png, svg, pdf, ...).
	Format string `yaml:"format"`

	// WidthIn and HeightIn are the figure size in inches.
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
}

// StyleConfig overrides the chart draw options. Zero values fall back to
// the chart package defaults.
type StyleConfig struct {
	GridColor     string  `yaml:"grid_color"`
	MarkerSize    float64 `yaml:"marker_size"`
	GridLineStyle string  `yaml:"grid_line_style"`
	GridLineWidth float64 `yaml:"grid_line_width"`
	StepOpacity   float64 `yaml:"step_opacity"`
	YTicks        int     `yaml:"y_ticks"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Data: DataConfig{
			House:     "data/house.csv",
			Districts: "data/num_districts.csv",
			Years:     "data/years.csv",
			Colors:    "data/colors.csv",
		},
		Output: OutputConfig{
			Dir:      "charts",
			Format:   "png",
			WidthIn:  10,
			HeightIn: 7,
		},
	}
}

// Load reads the yaml file at path over the defaults. A missing file
// yields pure defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Paths assembles the dataset input paths.
func (c Config) Paths() dataset.Paths {
	return dataset.Paths{
		HouseData:    c.Data.House,
		NumDistricts: c.Data.Districts,
		Years:        c.Data.Years,
		Colors:       c.Data.Colors,
	}
}

// Options maps the style overrides onto chart options; zero values are
// filled with defaults by the renderer.
func (c Config) Options() chart.Options {
	return chart.Options{
		GridColor:     c.Style.GridColor,
		MarkerSize:    c.Style.MarkerSize,
		GridLineStyle: c.Style.GridLineStyle,
		GridLineWidth: c.Style.GridLineWidth,
		StepOpacity:   c.Style.StepOpacity,
		YTickCount:    c.Style.YTicks,
	}
}

// FigureSize returns the configured figure size.
func (c Config) FigureSize() chart.FigureSize {
	return chart.FigureSize{
		Width:  vg.Length(c.Output.WidthIn) * vg.Inch,
		Height: vg.Length(c.Output.HeightIn) * vg.Inch,
	}
}
