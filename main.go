package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"termsnake/game/types"
	"termsnake/ui"
	"time"
)

func main() {
	os.Exit(run())
}

func run() int {
	frontend := flag.String("frontend", "terminal", "Where to play: terminal or window")
	autopilot := flag.Bool("autopilot", false, "Start with the bot steering")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	logFile := flag.String("log", "", "Write diagnostics to this file")
	flag.Parse()

	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "snake: open log: %v\n", err)
			return 1
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	final, err := session(ctx, config{
		grid:      types.DefaultGrid,
		seed:      *seed,
		autopilot: *autopilot,
		period:    types.TickPeriod,
		poll:      types.InputPollTimeout,
		open:      func(grid types.Grid) (ui.Surface, error) { return openSurface(*frontend, grid) },
		logger:    logger,
	})
	if err != nil {
		logger.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}

	fmt.Printf("final score: %d\n", final.Score)
	return 0
}

func openSurface(frontend string, grid types.Grid) (ui.Surface, error) {
	switch frontend {
	case "terminal":
		return ui.NewTerminal(grid)
	case "window":
		return ui.NewWindow(grid)
	default:
		return nil, fmt.Errorf("unknown frontend %q", frontend)
	}
}
