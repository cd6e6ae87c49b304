package manager

import (
	"functional-snake/game/entity"
	"functional-snake/game/types"

	"github.com/samber/lo"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	BoundaryCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case BoundaryCollision:
		return "boundary collision"
	case SelfCollision:
		return "self collision"
	default:
		return "none"
	}
}

// SelfCollisionExempt is the number of leading segments (head included)
// never tested against the head.
const SelfCollisionExempt = 3

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsAppleCollision reports whether the head sits on the apple
func (cm *CollisionManager) IsAppleCollision(snake *entity.Snake, apple *entity.Apple) bool {
	return snake.GetHead() == apple.Position
}

// isBoundaryCollision checks if a position is off the board
func (cm *CollisionManager) isBoundaryCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision compares the head with every segment from index 3 on.
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake) bool {
	if snake.Length() <= SelfCollisionExempt {
		return false
	}
	return lo.Contains(snake.Body[SelfCollisionExempt:], snake.GetHead())
}

// CheckCollision runs the boundary check and then the self check, returning
// the first that fires.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.isBoundaryCollision(snake.GetHead()) {
		return BoundaryCollision
	}
	if cm.isSelfCollision(snake) {
		return SelfCollision
	}
	return NoCollision
}
