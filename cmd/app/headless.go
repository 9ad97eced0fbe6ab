package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/donut/internal/config"
	"github.com/akyairhashvil/donut/internal/countdown"
	"github.com/akyairhashvil/donut/internal/models"
	"github.com/akyairhashvil/donut/internal/scheduler"
	"golang.org/x/sync/errgroup"
)

// runHeadless starts the countdown at once and prints HH:MM:SS on every tick until the timer
// is done or ctx is cancelled.
func runHeadless(ctx context.Context, s config.Settings, player countdown.Player, out io.Writer, interval time.Duration) error {
	ticker := scheduler.NewTicker(interval)
	defer ticker.Stop()
	timer := countdown.New(s.Duration, ticker, player)
	defer timer.Close()

	fmt.Fprintln(out, timer.TimeReadable())
	timer.Toggle()
	if timer.Phase() == models.PhaseDone {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		err := ticker.Run(gctx, func() bool {
			timer.Tick()
			fmt.Fprintln(out, timer.TimeReadable())
			return timer.Phase() != models.PhaseDone
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	// Wait for cancellation from the signal handler or the end of the countdown.
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	return g.Wait()
}
