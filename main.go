package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"functional-snake/config"
	"functional-snake/game"
	"functional-snake/logging"
	"functional-snake/ui"
	"functional-snake/ui/assets"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logging.G().Error("snake exited", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args, os.Stderr)
	if err != nil {
		return err
	}

	logging.SetDefault(logging.NewLogger(&logging.LoggerConfiguration{
		LogLevel: logging.ParseLevel(cfg.LogLevel),
	}))

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logging.G().Info("starting",
		"width", cfg.Width,
		"height", cfg.Height,
		"cell", cfg.CellSize,
		"tick", cfg.TickInterval,
		"seed", seed)

	paths, err := assets.Resolve(cfg.AssetDir)
	if err != nil {
		return err
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()

	music := ui.NewMusic()
	defer music.Close()

	renderer, err := ui.NewRenderer(paths)
	if err != nil {
		return fmt.Errorf("loading sprites: %w", err)
	}
	defer renderer.Close()
	renderer.Fill(ui.InitialFill)

	keyboard := ui.NewKeyboardHandler()
	g := game.NewGame(cfg.Grid(), rand.New(rand.NewSource(seed)), renderer, music)

	for !g.ShouldQuit() {
		for _, in := range keyboard.Poll() {
			g.HandleInput(in)
		}
		if g.ShouldQuit() {
			break
		}

		g.Update()
		time.Sleep(cfg.TickInterval)
	}
	return nil
}
