package main

import (
	"fmt"
	"math"

	"github.com/akyairhashvil/donut/internal/config"
	"github.com/akyairhashvil/donut/internal/countdown"
	"github.com/akyairhashvil/donut/internal/geometry"
	"github.com/akyairhashvil/donut/internal/models"
	"github.com/akyairhashvil/donut/internal/render"
	"github.com/akyairhashvil/donut/internal/util"
)

// exportFrame builds the frame shown after the elapsed fraction of the countdown.
func exportFrame(opts options, s config.Settings) render.Frame {
	size := float64(util.Clamp(opts.size, config.MinExportSize, math.MaxInt32))
	elapsed := util.ClampFloat(opts.elapsed, 0, 1)
	total := s.Duration.TotalSeconds()
	remaining := total - int(math.Round(float64(total)*elapsed))
	if total == 0 {
		elapsed = 0
	}
	layout := geometry.Compute(models.Bounds{Width: size, Height: size}, elapsed, countdown.TimeReadable(remaining), geometry.DefaultMetrics())
	return render.Frame{
		Layout:     layout,
		Foreground: s.ForegroundColor,
		Background: s.BackgroundColor,
	}
}

func runExport(opts options, s config.Settings) error {
	if err := render.Export(opts.export, exportFrame(opts, s)); err != nil {
		return fmt.Errorf("export %s: %w", opts.export, err)
	}
	fmt.Printf("wrote %s\n", opts.export)
	return nil
}
