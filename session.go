package main

import (
	"context"
	"fmt"
	"log"
	"termsnake/ai"
	"termsnake/game"
	"termsnake/game/types"
	"termsnake/ui"
	"time"

	"golang.org/x/sync/errgroup"
)

// config is everything a session needs from the command line
type config struct {
	grid      types.Grid
	seed      uint64
	autopilot bool
	period    time.Duration // Tick period
	poll      time.Duration // Input poll timeout
	open      func(types.Grid) (ui.Surface, error)
	logger    *log.Logger
}

// session plays one game to the end and returns the final state. The
// surface is closed before returning so the caller can print freely.
func session(ctx context.Context, cfg config) (game.Snapshot, error) {
	surface, err := cfg.open(cfg.grid)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("open surface: %w", err)
	}
	defer surface.Close()

	g, err := game.NewGame(cfg.grid, cfg.seed, ai.Greedy, cfg.logger)
	if err != nil {
		return game.Snapshot{}, err
	}
	snake := g.Snake()
	snake.Mutex.Lock()
	snake.Autopilot = cfg.autopilot
	snake.Mutex.Unlock()

	cfg.logger.Printf("session %s started: seed %d, autopilot %v", g.Stats.SessionID, cfg.seed, cfg.autopilot)

	renderer := ui.NewRenderer(surface)
	input := ui.NewInputHandler(surface, snake, cfg.poll, cfg.logger)

	var final game.Snapshot
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		final = tickLoop(gctx, g, renderer, cfg.period)
		return nil
	})
	grp.Go(func() error {
		return input.Run(gctx)
	})
	if err := grp.Wait(); err != nil {
		return final, err
	}

	g.Stats.Finish(time.Now(), final)
	cfg.logger.Printf("session %s ended: %s", g.Stats.SessionID, g.Stats.JSON())
	return final, nil
}

// tickLoop advances the game every period and redraws after each tick. A
// cancelled ctx counts as a quit request.
func tickLoop(ctx context.Context, g *game.Game, r *ui.Renderer, period time.Duration) game.Snapshot {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	snap := g.Snapshot()
	r.Draw(snap)
	for snap.Running {
		select {
		case <-ctx.Done():
			g.Quit()
		case <-ticker.C:
		}
		snap = g.Tick()
		r.Draw(snap)
	}
	return snap
}
