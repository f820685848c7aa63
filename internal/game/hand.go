// internal/game/hand.go
package game

import (
	"errors"
	"fmt"

	"github.com/jason-s-yu/goofspiel/internal/models"
)

// ErrInvalidBidIndex is returned when a bid names a slot that is out of range or already played.
var ErrInvalidBidIndex = errors.New("invalid bid index")

// Hand holds one side's 13 biddable cards, one per rank. Slot i (1-based)
// always holds rank i; playing it only flips its played marker.
type Hand struct {
	suit   models.Suit
	played [models.RanksPerSuit]bool
}

// NewHand deals a full hand in the given suit with nothing played.
func NewHand(suit models.Suit) *Hand {
	return &Hand{suit: suit}
}

func (h *Hand) Suit() models.Suit {
	return h.suit
}

// IsPlayable reports whether index is within [1,13] and not yet played.
func (h *Hand) IsPlayable(index int) bool {
	if index < models.Ace || index > models.King {
		return false
	}
	return !h.played[index-1]
}

// Play commits the slot at index and returns the rank bid. The hand is left
// untouched when the slot is not playable.
func (h *Hand) Play(index int) (int, error) {
	if !h.IsPlayable(index) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBidIndex, index)
	}
	h.played[index-1] = true
	return index, nil
}

// RemainingIndices lists the playable slots in ascending order.
func (h *Hand) RemainingIndices() []int {
	out := make([]int, 0, models.RanksPerSuit)
	for i, p := range h.played {
		if !p {
			out = append(out, i+1)
		}
	}
	return out
}

// Len is the number of slots still playable.
func (h *Hand) Len() int {
	n := 0
	for _, p := range h.played {
		if !p {
			n++
		}
	}
	return n
}

// Cards returns the current slot view for display; played slots are NoCard.
func (h *Hand) Cards() models.Cards {
	cs := make(models.Cards, models.RanksPerSuit)
	for i, p := range h.played {
		if p {
			cs[i] = models.NoCard
			continue
		}
		cs[i] = models.MustCard(h.suit, i+1)
	}
	return cs
}
