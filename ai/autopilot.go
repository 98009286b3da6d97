package ai

import "termsnake/game/types"

// Greedy steers the head straight at the food, closing the vertical gap
// before the horizontal one. It ignores the body and the walls. ok is false
// when head and food share a cell and there is nothing to steer towards.
func Greedy(head, food types.Point) (dir types.Direction, ok bool) {
	switch {
	case head.Y > food.Y:
		return types.Up, true
	case head.Y < food.Y:
		return types.Down, true
	case head.X > food.X:
		return types.Left, true
	case head.X < food.X:
		return types.Right, true
	}
	return dir, false
}
