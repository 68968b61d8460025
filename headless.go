package main

import (
	"fmt"
	"log"
	"time"

	"grid-games/game/clock"
	"grid-games/game/types"
	"grid-games/ui"
)

// runHeadless plays the configured number of games on an off-screen surface,
// advancing a synthetic clock one tick at a time.
func runHeadless(b *builder) error {
	period := b.period()

	for episode := 1; episode <= b.cfg.Episodes; episode++ {
		surface := ui.NewMemorySurface(b.cfg.Width, b.cfg.Height)
		ctrl, err := b.build(surface, types.CellWidth)
		if err != nil {
			return fmt.Errorf("build %s: %w", b.cfg.Game, err)
		}

		now := time.Unix(0, 0)
		sched := clock.NewScheduler(now)
		if err := ctrl.Start(sched); err != nil {
			return err
		}

		ticks := 0
		for ; ticks < b.cfg.Ticks && ctrl.Running(); ticks++ {
			now = now.Add(period)
			sched.Advance(now)
		}
		ctrl.Stop()
		log.Printf("episode %d: %d ticks, %d surface ops", episode, ticks, len(surface.Ops()))
	}
	return nil
}
