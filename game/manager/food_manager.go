package manager

import (
	"errors"
	"termsnake/game/entity"
	"termsnake/game/types"

	"golang.org/x/exp/rand"
)

// MaxPlacementAttempts bounds the random draws before falling back to a scan
const MaxPlacementAttempts = 1000

// ErrNoFreeCell is returned when the snake covers the whole inset region
var ErrNoFreeCell = errors.New("no free cell for food")

type FoodManager struct {
	grid         types.Grid
	margin       int
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, margin int, seed uint64, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		margin:       margin,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a random free cell inside the inset region by
// rejection sampling over the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	for i := 0; i < MaxPlacementAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake, fm.margin) {
			return food, nil
		}
	}

	// Crowded board: take the first free cell instead
	lo, hi := fm.grid.Inset(fm.margin)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			food := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(food, snake, fm.margin) {
				return food, nil
			}
		}
	}
	return types.Point{}, ErrNoFreeCell
}
