package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"grid-games/game/types"
)

type GameKind string

const (
	Snake  GameKind = "snake"
	Tetris GameKind = "tetris"
)

type Frontend string

const (
	Window   Frontend = "window"
	Terminal Frontend = "terminal"
	Headless Frontend = "headless"
)

type Config struct {
	Game         GameKind
	Frontend     Frontend
	Speed        time.Duration // Snake tick period
	Gravity      time.Duration // Tetris gravity period
	CellWidth    float64       // Snake pixels per cell; 0 picks the front end default
	Width        int           // Surface width in pixels
	Height       int           // Surface height in pixels
	StrictBorder bool
	Autopilot    bool
	Sound        bool
	Seed         uint64 // 0 seeds from the clock
	Ticks        int    // Headless tick limit
	Episodes     int    // Headless games to play
	LogFile      string
}

// Default returns the settings the games shipped with.
func Default() Config {
	return Config{
		Game:     Snake,
		Frontend: Window,
		Speed:    types.SnakeTickMillis * time.Millisecond,
		Gravity:  types.GravityTickMillis * time.Millisecond,
		Width:    800,
		Height:   600,
		Ticks:    10000,
		Episodes: 1,
	}
}

// Parse reads flags from args on top of Default. Usage and flag errors go to
// output.
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("grid-games", flag.ContinueOnError)
	fs.SetOutput(output)

	game := fs.String("game", string(cfg.Game), "Game to play: snake, tetris")
	frontend := fs.String("frontend", string(cfg.Frontend), "Front end: window, terminal, headless")
	speed := fs.Int("speed", int(cfg.Speed/time.Millisecond), "Snake tick in milliseconds (lower = faster)")
	gravity := fs.Int("gravity", int(cfg.Gravity/time.Millisecond), "Tetris gravity in milliseconds")
	fs.Float64Var(&cfg.CellWidth, "cell", 0, "Snake cell width in pixels (0 = front end default)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Surface width in pixels (window and headless)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Surface height in pixels (window and headless)")
	fs.BoolVar(&cfg.StrictBorder, "strict-border", false, "End the game on the first cell past the drawn grid")
	fs.BoolVar(&cfg.Autopilot, "autopilot", false, "Let the Q-learning pilot steer the snake")
	fs.BoolVar(&cfg.Sound, "sound", false, "Play sound cues")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 = time based)")
	fs.IntVar(&cfg.Ticks, "ticks", cfg.Ticks, "Headless: maximum ticks per game")
	fs.IntVar(&cfg.Episodes, "episodes", cfg.Episodes, "Headless: number of games to play")
	fs.StringVar(&cfg.LogFile, "log", "", "Write logs to this file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Game = GameKind(*game)
	cfg.Frontend = Frontend(*frontend)
	cfg.Speed = time.Duration(*speed) * time.Millisecond
	cfg.Gravity = time.Duration(*gravity) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid config")

func (c Config) Validate() error {
	switch c.Game {
	case Snake, Tetris:
	default:
		return fmt.Errorf("%w: unknown game %q", ErrInvalid, c.Game)
	}
	switch c.Frontend {
	case Window, Terminal, Headless:
	default:
		return fmt.Errorf("%w: unknown front end %q", ErrInvalid, c.Frontend)
	}
	if c.Speed <= 0 || c.Gravity <= 0 {
		return fmt.Errorf("%w: tick periods must be positive", ErrInvalid)
	}
	if c.CellWidth < 0 {
		return fmt.Errorf("%w: cell width must not be negative", ErrInvalid)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: surface %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Frontend == Headless && (c.Ticks <= 0 || c.Episodes <= 0) {
		return fmt.Errorf("%w: headless needs positive -ticks and -episodes", ErrInvalid)
	}
	return nil
}
