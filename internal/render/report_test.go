package render

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jason-s-yu/goofspiel/internal/game"
	"github.com/jason-s-yu/goofspiel/internal/models"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func clubs(ranks ...int) models.Cards {
	out := make(models.Cards, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, models.MustCard(models.Clubs, r))
	}
	return out
}

func TestRoundStart(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.RoundStart(game.PlayerView{Round: 2, Prize: models.MustCard(models.Clubs, models.Queen), Hand: clubs(1, 2)})
	out := buf.String()
	assert.Contains(t, out, "Round 2")
	assert.Contains(t, out, "The prize:")
	assert.Contains(t, out, "│Q    │")
	assert.Contains(t, out, "Your hand:")
	assert.NotContains(t, out, "Your pool so far:")

	buf.Reset()
	r.RoundStart(game.PlayerView{Round: 3, Prize: models.MustCard(models.Clubs, 5), Pool: clubs(models.Queen)})
	assert.Contains(t, buf.String(), "Your pool so far:")
}

func TestRoundResolved(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.RoundResolved(game.RoundResult{Prize: models.MustCard(models.Clubs, 7), BidA: 0, BidB: 4, Outcome: game.BWinsPrize}, "Computer")
	out := buf.String()
	assert.Contains(t, out, "Computer bid: 4")
	assert.Contains(t, out, "you bid: pass")
	assert.Contains(t, out, "Computer won the prize (Seven of Clubs)")

	buf.Reset()
	r.RoundResolved(game.RoundResult{Prize: models.MustCard(models.Clubs, 7), BidA: 9, BidB: 9, Outcome: game.Tied}, "Computer")
	assert.Contains(t, buf.String(), "Tie, Seven of Clubs is discarded")
}

func TestRejected(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Rejected(14)
	assert.Contains(t, buf.String(), "You cannot bid 14")
}

func TestGameEnd(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.GameEnd(game.Result{
		GameID:  uuid.New(),
		PlayerA: models.Player{Name: "Player"},
		PlayerB: models.Player{Name: "Computer"},
		TotalA:  13,
		TotalB:  2,
		Winner:  game.WinnerA,
		PoolA:   clubs(13),
		PoolB:   clubs(2),
		Discard: clubs(7),
	})
	out := buf.String()
	assert.Contains(t, out, "Computer total: 2")
	assert.Contains(t, out, "Your total: 13")
	assert.Contains(t, out, "You win!!")
	assert.Contains(t, out, "RESULT")
	assert.Contains(t, out, "Computer's pool:")
	assert.Contains(t, out, "│K    │")
	assert.Contains(t, out, "Discarded cards:")

	buf.Reset()
	r.GameEnd(game.Result{PlayerB: models.Player{Name: "Computer"}, Winner: game.Draw})
	assert.Contains(t, buf.String(), "Draw!")
	assert.Contains(t, buf.String(), "(none)")
}

func TestTally(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Tally(game.Tally{Games: 4, WinsA: 2, WinsB: 1, Draws: 1})
	assert.Contains(t, buf.String(), "Games: 4  Won: 2  Lost: 1  Drawn: 1")
}
