package manager

import (
	"grid-games/game/entity"
	"grid-games/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	limit  types.Grid
	strict bool
}

// NewCollisionManager checks walls against limit, normally
// floor(surface/cellWidth) on each axis. Unless strict, a coordinate equal to
// the limit is still in play, which leaves one extra column and row past the
// drawn grid.
func NewCollisionManager(limit types.Grid, strict bool) *CollisionManager {
	return &CollisionManager{
		limit:  limit,
		strict: strict,
	}
}

// CheckCollision reports what the snake's head has run into, self before
// wall.
func (cm *CollisionManager) CheckCollision(s *entity.Snake) CollisionType {
	if s.HeadOnBody() {
		return SelfCollision
	}
	if cm.IsWallCollision(s.HeadPosition()) {
		return WallCollision
	}
	return NoCollision
}

// IsWallCollision checks if a position is outside the playable range
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	if cm.strict {
		return pos.X < 0 || pos.X >= cm.limit.Rows || pos.Y < 0 || pos.Y >= cm.limit.Cols
	}
	return pos.X < 0 || pos.X > cm.limit.Rows || pos.Y < 0 || pos.Y > cm.limit.Cols
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if food may be placed at pos
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, grid types.Grid, s *entity.Snake) bool {
	if !grid.Contains(pos) {
		return false
	}
	return !s.Occupies(pos)
}
