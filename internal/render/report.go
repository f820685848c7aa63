// internal/render/report.go
package render

import (
	"fmt"
	"io"

	"github.com/jason-s-yu/goofspiel/internal/game"
	"github.com/jason-s-yu/goofspiel/internal/models"
	"github.com/pterm/pterm"
)

// Reporter prints the game for the human side.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) println(a ...interface{}) {
	fmt.Fprintln(r.out, a...)
}

func (r *Reporter) cards(cs models.Cards) {
	if len(cs) == 0 {
		r.println("(none)")
		return
	}
	fmt.Fprint(r.out, Cards(cs).String())
}

// RoundStart shows the prize on the table, the player's hand and, once
// something has been won, the player's pool.
func (r *Reporter) RoundStart(v game.PlayerView) {
	fmt.Fprint(r.out, pterm.DefaultSection.Sprintf("Round %d", v.Round))
	r.println("The prize:")
	fmt.Fprint(r.out, Card(v.Prize).String())
	r.println("Your hand:")
	fmt.Fprint(r.out, Cards(v.Hand).String())
	if len(v.Pool) > 0 {
		r.println("Your pool so far:")
		fmt.Fprint(r.out, Cards(v.Pool).String())
	}
}

// Rejected tells the player an entry was not a card they still hold.
func (r *Reporter) Rejected(value int) {
	fmt.Fprint(r.out, pterm.Warning.Sprintfln("You cannot bid %d, pick a card still in your hand", value))
}

// RoundResolved reveals both bids and who took the prize.
func (r *Reporter) RoundResolved(rr game.RoundResult, opponent string) {
	r.println(fmt.Sprintf("%s bid: %s", opponent, bidLabel(rr.BidB)))
	r.println(fmt.Sprintf("you bid: %s", bidLabel(rr.BidA)))
	switch rr.Outcome {
	case game.AWinsPrize:
		fmt.Fprint(r.out, pterm.Success.Sprintfln("You won the prize (%s)", rr.Prize.Name()))
	case game.BWinsPrize:
		fmt.Fprint(r.out, pterm.Info.Sprintfln("%s won the prize (%s)", opponent, rr.Prize.Name()))
	default:
		fmt.Fprint(r.out, pterm.Info.Sprintfln("Tie, %s is discarded", rr.Prize.Name()))
	}
}

func bidLabel(bid int) string {
	if bid == game.PassBid {
		return "pass"
	}
	return fmt.Sprintf("%d", bid)
}

// GameEnd prints totals, the verdict, both pools and the discard pile.
func (r *Reporter) GameEnd(res game.Result) {
	r.println(fmt.Sprintf("%s total: %d", res.PlayerB.Name, res.TotalB))
	r.println(fmt.Sprintf("Your total: %d", res.TotalA))

	var verdict string
	switch res.Winner {
	case game.WinnerA:
		verdict = pterm.LightGreen("You win!!")
	case game.WinnerB:
		verdict = pterm.LightRed("You lose.")
	default:
		verdict = pterm.LightYellow("Draw!")
	}
	fmt.Fprint(r.out, pterm.DefaultBox.WithTitle("|RESULT|").WithTitleTopCenter().Sprintln(verdict))

	r.println(fmt.Sprintf("%s's pool:", res.PlayerB.Name))
	r.cards(res.PoolB)
	r.println("Your pool:")
	r.cards(res.PoolA)
	r.println("Discarded cards:")
	r.cards(res.Discard)
}

// Tally prints the running score across the sessions played so far.
func (r *Reporter) Tally(t game.Tally) {
	r.println(pterm.Sprintf("Games: %d  Won: %d  Lost: %d  Drawn: %d", t.Games, t.WinsA, t.WinsB, t.Draws))
}
