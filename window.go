package main

import (
	"fmt"
	"time"

	"grid-games/config"
	"grid-games/game/clock"
	"grid-games/game/types"
	"grid-games/ui/window"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// runWindow plays one game in a raylib window. Input, ticks and drawing all
// happen on this goroutine.
func runWindow(b *builder) error {
	title := "Snake"
	if b.cfg.Game == config.Tetris {
		title = "Tetris"
	}

	rl.InitWindow(int32(b.cfg.Width), int32(b.cfg.Height), title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	// Escape is bound by the games themselves.
	rl.SetExitKey(0)

	surface := window.NewSurface(b.cfg.Width, b.cfg.Height)
	defer surface.Close()

	ctrl, err := b.build(surface, types.CellWidth)
	if err != nil {
		return fmt.Errorf("build %s: %w", b.cfg.Game, err)
	}

	sched := clock.NewScheduler(time.Now())
	if err := ctrl.Start(sched); err != nil {
		return err
	}
	defer ctrl.Stop()

	for !rl.WindowShouldClose() {
		for _, code := range window.PollKeys() {
			if !ctrl.HandleKey(code) {
				return nil
			}
		}
		sched.Advance(time.Now())
		surface.Present()
	}
	return nil
}
