package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"grid-games/ai"
	"grid-games/audio"
	"grid-games/config"
	"grid-games/game"
	"grid-games/game/shape"
	"grid-games/game/types"
	"grid-games/ui"

	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("%s on %s front end, seed %d", cfg.Game, cfg.Frontend, seed)

	var listeners []game.Listener
	if cfg.Sound {
		cues := audio.NewCues()
		if err := cues.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer cues.Close()
			listeners = append(listeners, cues)
		}
	}

	var pilot *ai.QLearning
	if cfg.Autopilot && cfg.Game == config.Snake {
		pilot = ai.NewQLearning(rng)
		listeners = append(listeners, pilot)
	}

	b := &builder{cfg: cfg, rng: rng, listeners: listeners}
	if pilot != nil {
		b.pilot = pilot
	}

	switch cfg.Frontend {
	case config.Terminal:
		return runTerminal(b)
	case config.Headless:
		err := runHeadless(b)
		if pilot != nil {
			log.Printf("autopilot: %d games, total reward %.1f, %d states",
				pilot.GamesPlayed, pilot.TotalReward, len(pilot.QTable))
		}
		return err
	default:
		return runWindow(b)
	}
}

// builder creates a fresh controller for a surface. One builder serves every
// game of a run so the pilot and listeners carry over.
type builder struct {
	cfg       config.Config
	rng       *rand.Rand
	pilot     game.Pilot
	listeners []game.Listener
}

func (b *builder) build(surface ui.Surface, defaultCell float64) (game.Controller, error) {
	if b.cfg.Game == config.Tetris {
		grid := types.Grid{Rows: types.TetrisRows, Cols: types.TetrisCols}
		width, height := surface.Size()
		r := ui.NewRenderer(surface, ui.FitCellWidth(width, height, grid))
		return game.NewTetrisGame(r, grid, game.TetrisOptions{
			GravityInterval: b.cfg.Gravity,
			Kind:            shape.KindI,
			Rng:             b.rng,
		})
	}

	cell := b.cfg.CellWidth
	if cell == 0 {
		cell = defaultCell
	}
	r := ui.NewRenderer(surface, cell)
	return game.NewSnakeGame(r, game.SnakeOptions{
		TickInterval: b.cfg.Speed,
		StrictBorder: b.cfg.StrictBorder,
		Rng:          b.rng,
		Pilot:        b.pilot,
		Listeners:    b.listeners,
	}), nil
}

// period is the tick length of the configured game.
func (b *builder) period() time.Duration {
	if b.cfg.Game == config.Tetris {
		return b.cfg.Gravity
	}
	return b.cfg.Speed
}

func setupLogging(cfg config.Config) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	}

	// Log lines would scribble over the terminal game.
	if cfg.Frontend == config.Terminal {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}
