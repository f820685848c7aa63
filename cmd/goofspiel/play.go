package main

import (
	"math/rand"

	"github.com/jason-s-yu/goofspiel/internal/config"
	"github.com/jason-s-yu/goofspiel/internal/game"
	"github.com/jason-s-yu/goofspiel/internal/middleware"
	"github.com/jason-s-yu/goofspiel/internal/models"
	"github.com/jason-s-yu/goofspiel/internal/render"
	"github.com/sirupsen/logrus"
)

// table wires one human player at a terminal against the computer.
type table struct {
	cfg      config.Config
	rng      *rand.Rand
	prompter game.Prompter
	reporter *render.Reporter
	logger   *logrus.Logger
	store    *game.ResultStore
}

// playOne runs a single session from setup to the final report.
func (t *table) playOne() (game.Result, error) {
	human := &game.HumanBidder{
		Prompter:  t.prompter,
		AllowPass: t.cfg.Rules.AllowPass,
		Rejected:  t.reporter.Rejected,
	}
	g, err := game.NewGoofspielGame(game.Options{
		Rules:     t.cfg.Rules,
		Rand:      t.rng,
		Logger:    t.logger,
		PrizeSuit: models.Clubs,
		SideA: game.Side{
			Player: models.NewPlayer(t.cfg.PlayerName, models.Clubs, true),
			Bidder: human,
		},
		SideB: game.Side{
			Player: models.NewPlayer("Computer", models.Spades, false),
		},
	})
	if err != nil {
		return game.Result{}, err
	}

	g.OnEvent = middleware.LogEvents(t.logger)(func(ev game.GameEvent) {
		switch ev.Type {
		case game.EventRoundPrize:
			t.reporter.RoundStart(g.ViewFor(game.SideA))
		case game.EventRoundResolved:
			rounds := g.Rounds()
			t.reporter.RoundResolved(rounds[len(rounds)-1], g.Player(game.SideB).Name)
		}
	})
	g.OnGameEnd = func(res game.Result) {
		t.store.AddResult(res)
		middleware.LogGameEnd(t.logger, res)
	}

	res, err := g.Play()
	if err != nil {
		return game.Result{}, err
	}
	t.reporter.GameEnd(res)
	t.reporter.Tally(t.store.Tally())
	return res, nil
}
