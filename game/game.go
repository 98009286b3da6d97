package game

import (
	"errors"
	"fmt"
	"log"
	"termsnake/game/entity"
	"termsnake/game/manager"
	"termsnake/game/types"
	"time"
)

// Director picks a heading for the head given the food position. ok false
// keeps the current heading.
type Director func(head, food types.Point) (dir types.Direction, ok bool)

// Snapshot is a consistent copy of everything the renderer draws
type Snapshot struct {
	Grid      types.Grid
	Head      types.Point
	Body      []types.Point
	Food      types.Point
	Score     int
	Autopilot bool
	Running   bool
	Cause     types.Cause
}

type Game struct {
	Grid         types.Grid
	snake        *entity.Snake
	food         types.Point
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	pilot        Director
	logger       *log.Logger
	Stats        *RunStats
}

// NewGame spawns a snake at the grid centre heading right and places the
// first food item. pilot may be nil, in which case autopilot has no effect.
func NewGame(grid types.Grid, seed uint64, pilot Director, logger *log.Logger) (*Game, error) {
	collisionMgr := manager.NewCollisionManager(grid)
	game := &Game{
		Grid:         grid,
		snake:        entity.NewSnake(grid.Center(), types.Right),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, types.FoodMargin, seed, collisionMgr),
		pilot:        pilot,
		logger:       logger,
		Stats:        NewRunStats(time.Now()),
	}

	food, err := game.foodMgr.GenerateFood(game.snake)
	if err != nil {
		return nil, fmt.Errorf("place initial food: %w", err)
	}
	game.food = food
	return game, nil
}

// Snake returns the shared snake record. Callers must hold its Mutex.
func (g *Game) Snake() *entity.Snake {
	return g.snake
}

// Tick advances the game by one step, runs the autopilot when enabled and
// returns what should be drawn. Ticking a stopped game only reports state.
func (g *Game) Tick() Snapshot {
	s := g.snake
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	if s.Running {
		g.step()
	}
	if s.Running && s.Autopilot && g.pilot != nil {
		g.Stats.AutopilotTicks++
		if dir, ok := g.pilot(s.Head, g.food); ok {
			s.Turn(dir)
		}
	}
	return g.snapshot()
}

// step is one tick of the state machine; the snake lock is held.
func (g *Game) step() {
	s := g.snake
	g.Stats.Ticks++

	s.Advance()

	if g.collisionMgr.IsWallCollision(s.Head) {
		g.stop(types.WallCollision)
		return
	}

	ate := g.collisionMgr.IsFoodCollision(s.Head, g.food)
	if ate {
		s.Grow()
		s.Score++
		g.logger.Printf("food eaten at %v, score %d", g.food, s.Score)
	}

	if g.collisionMgr.IsSelfCollision(s) {
		g.stop(types.SelfCollision)
		return
	}

	s.Follow()

	// Placed after Follow so the cell the first segment just moved into
	// is already taken.
	if ate {
		food, err := g.foodMgr.GenerateFood(s)
		if errors.Is(err, manager.ErrNoFreeCell) {
			g.stop(types.BoardFull)
			return
		}
		g.food = food
	}
}

func (g *Game) stop(cause types.Cause) {
	g.snake.Stop(cause)
	g.logger.Printf("game over: %s at %v", cause, g.snake.Head)
}

// Quit asks the game to stop at the next tick
func (g *Game) Quit() {
	g.snake.Mutex.Lock()
	g.snake.Stop(types.Quit)
	g.snake.Mutex.Unlock()
}

// Snapshot returns the current state under the snake lock
func (g *Game) Snapshot() Snapshot {
	g.snake.Mutex.RLock()
	defer g.snake.Mutex.RUnlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	s := g.snake
	return Snapshot{
		Grid:      g.Grid,
		Head:      s.Head,
		Body:      s.Body(),
		Food:      g.food,
		Score:     s.Score,
		Autopilot: s.Autopilot,
		Running:   s.Running,
		Cause:     s.Cause,
	}
}
