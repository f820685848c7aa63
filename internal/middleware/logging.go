// internal/middleware/logging.go

package middleware

import (
	"io"
	"strings"

	"github.com/jason-s-yu/goofspiel/internal/game"
	"github.com/sirupsen/logrus"
)

// NewLogger builds a text logger writing to out. Unknown levels fall back to warn.
func NewLogger(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// LogEvents is a game event middleware that logs each event with Logrus
// before passing it on. A nil next only logs.
func LogEvents(logger *logrus.Logger) func(next func(game.GameEvent)) func(game.GameEvent) {
	return func(next func(game.GameEvent)) func(game.GameEvent) {
		return func(ev game.GameEvent) {
			fields := logrus.Fields{
				"game":  ev.GameID.String(),
				"event": string(ev.Type),
			}
			if ev.Round > 0 {
				fields["round"] = ev.Round
			}
			if ev.Prize != nil {
				fields["prize"] = ev.Prize.Name
			}
			if ev.BidA != nil && ev.BidB != nil {
				fields["bid_a"] = *ev.BidA
				fields["bid_b"] = *ev.BidB
			}
			if ev.Outcome != "" {
				fields["outcome"] = ev.Outcome
			}
			logger.WithFields(fields).Debug("Game event")
			if logger.IsLevelEnabled(logrus.TraceLevel) {
				logger.WithFields(fields).Trace(string(game.EventJSON(ev)))
			}

			if next != nil {
				next(ev)
			}
		}
	}
}

// LogGameEnd logs the scored result of a session.
func LogGameEnd(logger logrus.FieldLogger, res game.Result) {
	logger.WithFields(logrus.Fields{
		"game":    res.GameID.String(),
		"total_a": res.TotalA,
		"total_b": res.TotalB,
		"winner":  res.Winner.String(),
		"discard": len(res.Discard),
	}).Info("Game finished")
}
