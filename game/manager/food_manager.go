package manager

import (
	"errors"

	"grid-games/game/entity"
	"grid-games/game/types"
	"grid-games/ui"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("no free cell for food")

// attemptsPerCell bounds random placement before falling back to the free-cell scan.
const attemptsPerCell = 4

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	renderer     *ui.Renderer
	collisionMgr *CollisionManager
	maxAttempts  int
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, r *ui.Renderer, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		renderer:     r,
		collisionMgr: collisionMgr,
		maxAttempts:  attemptsPerCell * grid.Cells(),
	}
}

// GenerateFood picks a cell in the grid that the snake does not occupy.
// Random draws are tried first; once they run out a free cell is sampled
// from the complement of the snake, so the call always terminates.
func (fm *FoodManager) GenerateFood(s *entity.Snake) (types.Point, error) {
	if fm.grid.Rows <= 0 || fm.grid.Cols <= 0 {
		return types.Point{}, ErrBoardFull
	}

	for i := 0; i < fm.maxAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Rows),
			Y: fm.rng.Intn(fm.grid.Cols),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, fm.grid, s) {
			return food, nil
		}
	}

	free := fm.freeCells(s)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

// Spawn generates a food cell and draws it.
func (fm *FoodManager) Spawn(s *entity.Snake) (*entity.Food, error) {
	pos, err := fm.GenerateFood(s)
	if err != nil {
		return nil, err
	}
	food := entity.NewFood(fm.renderer, pos)
	food.Draw()
	return food, nil
}

func (fm *FoodManager) freeCells(s *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, s.Len()+1)
	for _, p := range s.Positions() {
		occupied[p] = struct{}{}
	}

	free := make([]types.Point, 0, max(0, fm.grid.Cells()-len(occupied)))
	for x := 0; x < fm.grid.Rows; x++ {
		for y := 0; y < fm.grid.Cols; y++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
