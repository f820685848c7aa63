// internal/game/bidder.go
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jason-s-yu/goofspiel/internal/models"
)

// ErrHandExhausted means an automated bidder was asked to bid with nothing
// left to play. A session deals exactly one slot per round, so this is a
// sequencing bug rather than a recoverable condition.
var ErrHandExhausted = errors.New("ran out of cards")

// PassBid is the bid recorded for a pass.
const PassBid = 0

// Bidder chooses a playable slot from a hand and plays it in the same step,
// returning the rank bid. A bidder must never see the opponent's bid.
type Bidder interface {
	Choose(h *Hand) (int, error)
}

// Prompter asks the player for an integer. Implementations retry on
// unparsable input themselves and only return an error when input ends.
type Prompter interface {
	RequestInteger(prompt string) (int, error)
}

// HumanBidder reads bids from a Prompter until a playable slot is named.
type HumanBidder struct {
	Prompter  Prompter
	AllowPass bool

	// Rejected, when set, is told about every refused entry so the caller can show it.
	Rejected func(value int)
}

func (b *HumanBidder) prompt() string {
	if b.AllowPass {
		return "Bid a card by number or enter 0 to pass: "
	}
	return "Bid a card by number: "
}

func (b *HumanBidder) Choose(h *Hand) (int, error) {
	for {
		choice, err := b.Prompter.RequestInteger(b.prompt())
		if err != nil {
			return 0, err
		}
		if b.AllowPass && choice == PassBid {
			return PassBid, nil
		}
		rank, err := h.Play(choice)
		if err == nil {
			return rank, nil
		}
		if b.Rejected != nil {
			b.Rejected(choice)
		}
	}
}

// RandomBidder picks uniformly among the playable slots every round.
type RandomBidder struct {
	rng *rand.Rand
}

func NewRandomBidder(rng *rand.Rand) *RandomBidder {
	return &RandomBidder{rng: rng}
}

func (b *RandomBidder) Choose(h *Hand) (int, error) {
	legal := h.RemainingIndices()
	if len(legal) == 0 {
		return 0, ErrHandExhausted
	}
	return h.Play(legal[b.rng.Intn(len(legal))])
}

// SequentialBidder shuffles its ranks once, on first use, and then plays
// them front to back. Ranks already played by other means are skipped.
type SequentialBidder struct {
	rng   *rand.Rand
	order []int
	next  int
}

func NewSequentialBidder(rng *rand.Rand) *SequentialBidder {
	return &SequentialBidder{rng: rng}
}

func (b *SequentialBidder) Choose(h *Hand) (int, error) {
	if b.order == nil {
		b.order = b.rng.Perm(models.RanksPerSuit)
		for i := range b.order {
			b.order[i]++
		}
	}
	for b.next < len(b.order) {
		idx := b.order[b.next]
		b.next++
		if h.IsPlayable(idx) {
			return h.Play(idx)
		}
	}
	return 0, ErrHandExhausted
}

// ScriptedBidder replays a fixed list of bids. Useful for replays and tests.
type ScriptedBidder struct {
	Bids []int
	next int
}

func (b *ScriptedBidder) Choose(h *Hand) (int, error) {
	if b.next >= len(b.Bids) {
		return 0, ErrHandExhausted
	}
	bid := b.Bids[b.next]
	b.next++
	return h.Play(bid)
}

// NewAutomatedBidder builds the computer bidder for a strategy.
func NewAutomatedBidder(strategy Strategy, rng *rand.Rand) (Bidder, error) {
	switch strategy {
	case StrategyRandomLegalIndex, "":
		return NewRandomBidder(rng), nil
	case StrategySequentialShuffledDraw:
		return NewSequentialBidder(rng), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}
