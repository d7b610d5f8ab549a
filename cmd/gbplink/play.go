package main

import (
	"context"
	"time"

	"github.com/clktmr/gba/drivers/gbplayer"
	"github.com/clktmr/gba/drivers/gbplayer/accessory"
)

// status is what the accessory knows about the link.
type status struct {
	synced   bool
	rumble   gbplayer.Command
	restarts int
}

// play runs transfers on x every interval until ctx is done or x fails. Each
// change of status is passed to report.
func play(ctx context.Context, x accessory.Exchanger, interval time.Duration, report func(status)) error {
	var a accessory.Accessory

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := status{rumble: gbplayer.Stop}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if err := a.Step(x); err != nil {
			return err
		}

		s := status{a.Synced(), a.Rumble(), a.Restarts}
		if s != last {
			report(s)
			last = s
		}
	}
}
