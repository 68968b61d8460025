package manager

import (
	"errors"
	"testing"

	"grid-games/game/entity"
	"grid-games/game/input"
	"grid-games/game/types"
	"grid-games/ui"

	"github.com/joonazan/vec2"
	"golang.org/x/exp/rand"
)

func newFoodManager(grid types.Grid, seed uint64) (*FoodManager, *ui.Renderer, *ui.MemorySurface) {
	surface := ui.NewMemorySurface(grid.Rows*20, grid.Cols*20)
	r := ui.NewRenderer(surface, 20)
	cm := NewCollisionManager(grid, false)
	return NewFoodManager(grid, rand.New(rand.NewSource(seed)), r, cm), r, surface
}

func TestGeneratedFoodNeverOnSnake(t *testing.T) {
	grid := types.Grid{Rows: 6, Cols: 2}
	fm, r, _ := newFoodManager(grid, 1)
	s := entity.NewSnake(r, input.NewDirectionQueue())

	for i := 0; i < 500; i++ {
		p, err := fm.GenerateFood(s)
		if err != nil {
			t.Fatalf("GenerateFood: %v", err)
		}
		if s.Occupies(p) {
			t.Fatalf("food at %v overlaps the snake", p)
		}
		if !grid.Contains(p) {
			t.Fatalf("food at %v is off the grid", p)
		}
	}
}

func TestGenerateFoodFallsBackToFreeCell(t *testing.T) {
	grid := types.Grid{Rows: 3, Cols: 3}
	fm, r, _ := newFoodManager(grid, 3)
	fm.maxAttempts = 0

	// Everything but (2,2) is taken.
	s := entity.NewSnakeAt(r, input.NewDirectionQueue(), types.Point{X: 0, Y: 0}, []types.Point{
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2},
	})

	p, err := fm.GenerateFood(s)
	if err != nil {
		t.Fatalf("GenerateFood: %v", err)
	}
	if p != (types.Point{X: 2, Y: 2}) {
		t.Errorf("food = %v, want the only free cell (2,2)", p)
	}
}

func TestGenerateFoodOnFullBoard(t *testing.T) {
	grid := types.Grid{Rows: 2, Cols: 2}
	fm, r, _ := newFoodManager(grid, 5)
	s := entity.NewSnakeAt(r, input.NewDirectionQueue(), types.Point{X: 0, Y: 0},
		[]types.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})

	_, err := fm.GenerateFood(s)
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("GenerateFood on a full board: err = %v, want ErrBoardFull", err)
	}
}

func TestSpawnDrawsFood(t *testing.T) {
	grid := types.Grid{Rows: 10, Cols: 10}
	fm, r, surface := newFoodManager(grid, 9)
	s := entity.NewSnake(r, input.NewDirectionQueue())

	food, err := fm.Spawn(s)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	corner := vec2.Vector{X: float64(food.Pos.X * 20), Y: float64(food.Pos.Y * 20)}
	if c, ok := surface.FillAt(corner); !ok || c != types.Red {
		t.Errorf("food cell fill = %v, want red", c)
	}
}
