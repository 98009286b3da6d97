package manager

import (
	"termsnake/game/entity"
	"termsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision checks if a position touches the border
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return cm.grid.IsBorder(pos)
}

// IsSelfCollision checks if the head sits on one of the snake's own segments
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HitsBody(snake.Head)
}

// ValidateSpawnPosition checks if a position is free for food within the
// inset region keeping margin cells from each edge
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, margin int) bool {
	lo, hi := cm.grid.Inset(margin)
	if pos.X < lo.X || pos.X > hi.X || pos.Y < lo.Y || pos.Y > hi.Y {
		return false
	}
	return !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
