package main

import (
	"fmt"
	"time"

	"grid-games/game/clock"
	"grid-games/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

// terminalCell is the snake cell width on a terminal: a one character
// interior between shared outlines.
const terminalCell = 2

// runTerminal plays one game in the terminal. A helper goroutine only
// forwards tcell events; all game and screen work stays on this one.
func runTerminal(b *builder) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	surface := terminal.NewSurface(screen)
	ctrl, err := b.build(surface, terminalCell)
	if err != nil {
		return fmt.Errorf("build %s: %w", b.cfg.Game, err)
	}

	sched := clock.NewScheduler(time.Now())
	if err := ctrl.Start(sched); err != nil {
		return err
	}
	defer ctrl.Stop()
	surface.Show()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if code := terminal.KeyCode(e); code != "" && !ctrl.HandleKey(code) {
					return nil
				}
			}
		case now := <-frame.C:
			sched.Advance(now)
			surface.Show()
		}
	}
}
