package game

import (
	"errors"
	"log"
	"time"

	"grid-games/game/clock"
	"grid-games/game/entity"
	"grid-games/game/input"
	"grid-games/game/manager"
	"grid-games/game/types"
	"grid-games/ui"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

type SnakeOptions struct {
	TickInterval time.Duration
	// StrictBorder ends the game on the first cell past the drawn grid
	// instead of one cell later.
	StrictBorder bool
	Rng          *rand.Rand
	Pilot        Pilot
	Listeners    []Listener
}

type SnakeGame struct {
	UUID         string
	Grid         *entity.Grid
	queue        *input.DirectionQueue
	snake        *entity.Snake
	food         *entity.Food
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	interval     *clock.Interval
	period       time.Duration
	pilot        Pilot
	listeners    []Listener
	state        State
	reason       OverReason
	ticks        int
	startTime    time.Time
}

// NewSnakeGame sizes the grid from the renderer's surface and places the
// snake at its opening layout.
func NewSnakeGame(r *ui.Renderer, opts SnakeOptions) *SnakeGame {
	extent := r.Extent()
	queue := input.NewDirectionQueue()

	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	period := opts.TickInterval
	if period <= 0 {
		period = types.SnakeTickMillis * time.Millisecond
	}

	collisionMgr := manager.NewCollisionManager(extent, opts.StrictBorder)
	return &SnakeGame{
		UUID:         uuid.New().String(),
		Grid:         entity.NewGrid(extent, r),
		queue:        queue,
		snake:        entity.NewSnake(r, queue),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(extent, rng, r, collisionMgr),
		period:       period,
		pilot:        opts.Pilot,
		listeners:    opts.Listeners,
		state:        StateRunning,
	}
}

// Start draws the board, places the first food and schedules the tick.
func (g *SnakeGame) Start(s *clock.Scheduler) error {
	if g.interval != nil {
		return ErrAlreadyStarted
	}

	g.startTime = time.Now()
	g.Grid.Draw()
	g.interval = s.Every(g.period, g.Tick)
	log.Printf("snake %s: started on %dx%d grid, tick %v", g.UUID, g.Grid.Rows, g.Grid.Cols, g.period)

	food, err := g.foodMgr.Spawn(g.snake)
	if err != nil {
		g.end(OverBoardFull)
		return nil
	}
	g.food = food
	g.snake.Draw()
	return nil
}

// Tick advances the game by one step: move, check for game over, eat, draw.
func (g *SnakeGame) Tick() {
	if g.state != StateRunning {
		return
	}
	g.ticks++

	if g.pilot != nil {
		g.pilot.Steer(g, g.queue)
	}

	g.snake.Move()

	switch g.collisionMgr.CheckCollision(g.snake) {
	case manager.SelfCollision:
		g.end(OverSelf)
		return
	case manager.WallCollision:
		g.end(OverBorder)
		return
	}

	if g.food != nil && g.collisionMgr.IsFoodCollision(g.snake.HeadPosition(), g.food.Pos) {
		g.snake.Eat(g.food)
		log.Printf("snake %s: ate at %v, length %d", g.UUID, g.food.Pos, g.snake.Len())
		for _, l := range g.listeners {
			l.FoodEaten(g.food.Pos)
		}

		food, err := g.foodMgr.Spawn(g.snake)
		if err != nil {
			g.snake.Draw()
			if errors.Is(err, manager.ErrBoardFull) {
				g.end(OverBoardFull)
			}
			return
		}
		g.food = food
	}

	g.snake.Draw()
}

// HandleKey steers the snake. Reversals are dropped by the queue.
func (g *SnakeGame) HandleKey(code string) bool {
	action := input.SnakeBindings.Lookup(code)
	switch action {
	case input.ActionQuit:
		g.Stop()
		return false
	case input.ActionNone:
		return true
	}
	if g.state == StateRunning {
		g.queue.Enqueue(action.Direction())
	}
	return true
}

func (g *SnakeGame) Running() bool {
	return g.state == StateRunning
}

// Stop ends a running game as quit.
func (g *SnakeGame) Stop() {
	if g.state == StateRunning {
		g.end(OverQuit)
	}
}

func (g *SnakeGame) State() State { return g.state }

func (g *SnakeGame) Reason() OverReason { return g.reason }

func (g *SnakeGame) Ticks() int { return g.ticks }

func (g *SnakeGame) Snake() *entity.Snake { return g.snake }

// Queue returns the direction queue key presses feed.
func (g *SnakeGame) Queue() *input.DirectionQueue {
	return g.queue
}

// FoodCell returns the current food, nil before Start.
func (g *SnakeGame) FoodCell() *entity.Food {
	return g.food
}

// SetFood replaces the current food.
func (g *SnakeGame) SetFood(f *entity.Food) {
	g.food = f
}

func (g *SnakeGame) Head() types.Point {
	return g.snake.HeadPosition()
}

func (g *SnakeGame) Body() []types.Point {
	return g.snake.BodyPositions()
}

// Food returns the food position, or the zero point before Start.
func (g *SnakeGame) Food() types.Point {
	if g.food == nil {
		return types.Point{}
	}
	return g.food.Pos
}

func (g *SnakeGame) Blocked(p types.Point) bool {
	if g.collisionMgr.IsWallCollision(p) {
		return true
	}
	for _, b := range g.snake.BodyPositions() {
		if b == p {
			return true
		}
	}
	return false
}

// end moves the game to its terminal state. The interval is cancelled here
// and nowhere else.
func (g *SnakeGame) end(reason OverReason) {
	if g.state != StateRunning {
		return
	}
	if g.interval != nil {
		g.interval.Cancel()
	}
	g.state = StateOver
	g.reason = reason

	log.Printf("snake %s: game over (%s) after %d ticks, length %d, %v",
		g.UUID, reason, g.ticks, g.snake.Len(), time.Since(g.startTime).Round(time.Millisecond))
	for _, l := range g.listeners {
		l.GameOver(reason)
	}
}
