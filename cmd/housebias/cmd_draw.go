package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"housebias/internal/chart"
	"housebias/internal/config"
	"housebias/internal/dataset"
)

// drawCmd renders partisan bias charts
var drawCmd = &cobra.Command{
	Use:   "draw [states...]",
	Short: "Render partisan bias charts for the given states",
	Long: `Loads the election results and configuration series, then renders one
partisan bias chart per state. With no arguments, every state in the
district-count file is rendered.`,
	RunE: runDraw,
}

func runDraw(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}

	logger.Debug("loading dataset",
		zap.String("house", cfg.Data.House),
		zap.String("districts", cfg.Data.Districts))
	ds, err := dataset.Load(cfg.Paths())
	if err != nil {
		return err
	}
	logger.Info("dataset loaded",
		zap.Int("records", len(ds.Records())),
		zap.Int("states", len(ds.States())),
		zap.Ints("years", ds.Years()))

	if cfg.Data.DropColumns != "" {
		if err := ds.DropColumns(cfg.Data.DropColumns); err != nil {
			return err
		}
		logger.Debug("columns dropped", zap.Strings("remaining", ds.Table().Columns()))
	}

	states := args
	if len(states) == 0 {
		states = ds.States()
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	renderer := chart.New(ds)
	for _, state := range states {
		fig, err := renderer.Draw(state, cfg.FigureSize(), cfg.Options())
		if err != nil {
			return fmt.Errorf("draw %s: %w", state, err)
		}
		path := filepath.Join(cfg.Output.Dir, state+"."+cfg.Output.Format)
		if err := fig.Save(path); err != nil {
			return fmt.Errorf("save %s: %w", state, err)
		}
		logger.Info("chart written", zap.String("state", state), zap.String("path", path))
	}
	return nil
}
