package game

import (
	"log"
	"time"

	"grid-games/game/clock"
	"grid-games/game/entity"
	"grid-games/game/input"
	"grid-games/game/shape"
	"grid-games/game/types"
	"grid-games/ui"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

type TetrisOptions struct {
	GravityInterval time.Duration
	Kind            shape.Kind
	Rng             *rand.Rand
}

// TetrisGame drops a single shape under gravity and rotates it on demand.
// Gravity and rotation only meet through redrawing the shape.
type TetrisGame struct {
	UUID     string
	Grid     *entity.Grid
	shape    *shape.Shape
	gravity  *shape.Gravity
	interval *clock.Interval
	period   time.Duration
	state    State
}

func NewTetrisGame(r *ui.Renderer, grid types.Grid, opts TetrisOptions) (*TetrisGame, error) {
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	period := opts.GravityInterval
	if period <= 0 {
		period = types.GravityTickMillis * time.Millisecond
	}

	s, err := shape.NewShape(opts.Kind, r, rng)
	if err != nil {
		return nil, err
	}

	return &TetrisGame{
		UUID:    uuid.New().String(),
		Grid:    entity.NewGrid(grid, r),
		shape:   s,
		gravity: shape.NewGravity(grid),
		period:  period,
		state:   StateRunning,
	}, nil
}

// Start draws the board and the shape and schedules gravity.
func (g *TetrisGame) Start(s *clock.Scheduler) error {
	if g.interval != nil {
		return ErrAlreadyStarted
	}
	g.Grid.Draw()
	g.shape.Draw()
	g.interval = s.Every(g.period, g.Tick)
	log.Printf("tetris %s: started on %dx%d grid with %s shape, gravity %v",
		g.UUID, g.Grid.Rows, g.Grid.Cols, g.shape.Kind(), g.period)
	return nil
}

// Tick applies one step of gravity and redraws the shape.
func (g *TetrisGame) Tick() {
	if g.state != StateRunning {
		return
	}
	g.gravity.Apply(g.shape)
	g.shape.Draw()
}

// Rotate turns the shape a quarter. Failures are logged and returned.
func (g *TetrisGame) Rotate() error {
	if g.state != StateRunning {
		return nil
	}
	if err := g.shape.Rotate(); err != nil {
		log.Printf("tetris %s: rotate: %v", g.UUID, err)
		return err
	}
	return nil
}

func (g *TetrisGame) HandleKey(code string) bool {
	switch input.TetrisBindings.Lookup(code) {
	case input.ActionQuit:
		g.Stop()
		return false
	case input.ActionRotate:
		_ = g.Rotate()
	}
	return true
}

func (g *TetrisGame) Running() bool {
	return g.state == StateRunning
}

// Stop cancels gravity. Later calls do nothing.
func (g *TetrisGame) Stop() {
	if g.state != StateRunning {
		return
	}
	if g.interval != nil {
		g.interval.Cancel()
	}
	g.state = StateOver
	log.Printf("tetris %s: stopped", g.UUID)
}

func (g *TetrisGame) Shape() *shape.Shape {
	return g.shape
}
