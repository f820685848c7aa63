package main

import (
	"errors"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/jason-s-yu/goofspiel/internal/config"
	"github.com/jason-s-yu/goofspiel/internal/game"
	"github.com/jason-s-yu/goofspiel/internal/middleware"
	"github.com/jason-s-yu/goofspiel/internal/render"
	"github.com/jason-s-yu/goofspiel/internal/terminal"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	logger := middleware.NewLogger(cfg.LogLevel, os.Stderr)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Goof", pterm.FgLightGreen.ToStyle()),
		putils.LettersFromStringWithStyle("spiel", pterm.FgDarkGray.ToStyle()),
	).Render()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.WithField("seed", seed).Debug("Seeded random source")

	t := &table{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		prompter: terminal.NewPrompter(os.Stdin, os.Stdout),
		reporter: render.NewReporter(os.Stdout),
		logger:   logger,
		store:    game.NewResultStore(),
	}

	for n := 0; cfg.Games == 0 || n < cfg.Games; n++ {
		if _, err := t.playOne(); err != nil {
			if errors.Is(err, io.EOF) {
				pterm.Info.Println("Input closed, bye.")
				return
			}
			logger.WithError(err).Fatal("Game aborted")
		}
		logger.Info("Starting a new game")
	}
}
