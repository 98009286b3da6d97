package manager

import (
	"errors"
	"termsnake/game/entity"
	"termsnake/game/types"
	"testing"
)

func TestWallCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)
	if !cm.IsWallCollision(types.Point{X: 0, Y: 5}) {
		t.Error("Expected (0,5) to be a wall")
	}
	if !cm.IsWallCollision(types.Point{X: 19, Y: 19}) {
		t.Error("Expected (19,19) to be a wall")
	}
	if cm.IsWallCollision(types.Point{X: 1, Y: 5}) {
		t.Error("Expected (1,5) to be open")
	}
}

func TestSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)
	s := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	s.Segments = []entity.Segment{{Pos: types.Point{X: 5, Y: 6}}}
	if cm.IsSelfCollision(s) {
		t.Error("Expected no collision")
	}
	s.Head = types.Point{X: 5, Y: 6}
	if !cm.IsSelfCollision(s) {
		t.Error("Expected collision with segment")
	}
}

func TestGenerateFoodStaysInInset(t *testing.T) {
	grid := types.DefaultGrid
	lo, hi := grid.Inset(types.FoodMargin)
	s := entity.NewSnake(grid.Center(), types.Right)
	for x := 4; x < 10; x++ {
		s.Segments = append(s.Segments, entity.Segment{Pos: types.Point{X: x, Y: 10}})
	}

	for seed := uint64(1); seed <= 50; seed++ {
		fm := NewFoodManager(grid, types.FoodMargin, seed, NewCollisionManager(grid))
		for i := 0; i < 100; i++ {
			food, err := fm.GenerateFood(s)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if food.X < lo.X || food.X > hi.X || food.Y < lo.Y || food.Y > hi.Y {
				t.Fatalf("Food %v outside inset %v-%v", food, lo, hi)
			}
			if s.Occupies(food) {
				t.Fatalf("Food %v placed on the snake", food)
			}
		}
	}
}

func TestGenerateFoodFindsLastFreeCell(t *testing.T) {
	grid := types.DefaultGrid
	lo, hi := grid.Inset(types.FoodMargin)
	free := types.Point{X: 12, Y: 14}

	s := entity.NewSnake(lo, types.Right)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			p := types.Point{X: x, Y: y}
			if p != free && p != lo {
				s.Segments = append(s.Segments, entity.Segment{Pos: p})
			}
		}
	}

	fm := NewFoodManager(grid, types.FoodMargin, 7, NewCollisionManager(grid))
	food, err := fm.GenerateFood(s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if food != free {
		t.Errorf("Expected food at %v, got %v", free, food)
	}
}

func TestGenerateFoodNoFreeCell(t *testing.T) {
	grid := types.Grid{Width: 7, Height: 7}
	lo, hi := grid.Inset(types.FoodMargin)

	s := entity.NewSnake(lo, types.Right)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if p := (types.Point{X: x, Y: y}); p != lo {
				s.Segments = append(s.Segments, entity.Segment{Pos: p})
			}
		}
	}

	fm := NewFoodManager(grid, types.FoodMargin, 1, NewCollisionManager(grid))
	if _, err := fm.GenerateFood(s); !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("Expected ErrNoFreeCell, got %v", err)
	}
}
