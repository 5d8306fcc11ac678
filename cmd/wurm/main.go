package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/wurm/audio"
	"github.com/lixenwraith/wurm/config"
	"github.com/lixenwraith/wurm/constants"
	"github.com/lixenwraith/wurm/core"
	"github.com/lixenwraith/wurm/engine"
	"github.com/lixenwraith/wurm/input"
	"github.com/lixenwraith/wurm/ledger"
	"github.com/lixenwraith/wurm/render"
	"golang.org/x/term"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/wurm.log")
	configFlag = flag.String("config", "", "Path to a YAML file merged over the built-in defaults")
	seedFlag   = flag.Int64("seed", 0, "Fruit placement seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wurm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashTerminal(screen)

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	width, height := screen.Size()
	cfg = cfg.WithScreen(width, height)
	log.Printf("screen %dx%d", width, height)

	store := ledger.NewStore(cfg.LedgerPath)
	scores := store.Load()

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := engine.NewGame(cfg, scores, rand.New(rand.NewSource(seed)), sounds)
	if err != nil {
		screen.Fini()
		return err
	}

	palette := game.Palette()
	screen.SetStyle(palette.Base)
	screen.HideCursor()
	screen.Clear()

	poller := input.NewPoller(screen, input.DefaultKeyTable())
	poller.SetCrashHandler(core.HandleCrash)
	poller.Start()

	renderer := render.NewTerminalRenderer(screen, game.Grid(), palette.Base)
	loop := engine.NewLoop(game, poller, renderer, constants.TickInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := loop.Run(ctx)

	core.SetCrashTerminal(nil)
	screen.Fini()

	if err := store.Save(game.Ledger()); err != nil {
		log.Printf("saving highscores: %v", err)
		fmt.Fprintf(os.Stderr, "wurm: could not save highscores: %v\n", err)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
