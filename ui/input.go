package ui

import (
	"context"
	"log"
	"termsnake/game/entity"
	"termsnake/game/types"
	"time"
)

var movementKeys = map[Key]types.Direction{
	'w': types.Up, 'k': types.Up, KeyArrowUp: types.Up,
	's': types.Down, 'j': types.Down, KeyArrowDown: types.Down,
	'a': types.Left, 'h': types.Left, KeyArrowLeft: types.Left,
	'd': types.Right, 'l': types.Right, KeyArrowRight: types.Right,
}

// InputHandler applies keys to the snake. It runs alongside the tick loop
// and takes the snake lock only while applying a key.
type InputHandler struct {
	keys    KeySource
	snake   *entity.Snake
	timeout time.Duration
	logger  *log.Logger
}

func NewInputHandler(keys KeySource, snake *entity.Snake, timeout time.Duration, logger *log.Logger) *InputHandler {
	return &InputHandler{
		keys:    keys,
		snake:   snake,
		timeout: timeout,
		logger:  logger,
	}
}

// Run polls for keys until the snake stops running or ctx is done
func (h *InputHandler) Run(ctx context.Context) error {
	for ctx.Err() == nil && h.running() {
		if key, ok := h.keys.PollKey(h.timeout); ok {
			h.Handle(key)
		}
	}
	return nil
}

func (h *InputHandler) running() bool {
	h.snake.Mutex.RLock()
	defer h.snake.Mutex.RUnlock()
	return h.snake.Running
}

// Handle applies one key. Unknown keys are ignored.
func (h *InputHandler) Handle(key Key) {
	s := h.snake
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	if dir, ok := movementKeys[key]; ok {
		s.Turn(dir)
		return
	}
	switch key {
	case 'q', KeyEscape, KeyInterrupt:
		s.Stop(types.Quit)
	case 'b':
		s.Autopilot = !s.Autopilot
		h.logger.Printf("autopilot %v", s.Autopilot)
	}
}
