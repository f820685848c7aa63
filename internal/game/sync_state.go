// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/goofspiel/internal/models"
)

// OpponentView is what one side may know about the other: how many cards it
// has left and what it has won. Its hand is not revealed slot by slot.
type OpponentView struct {
	PlayerID uuid.UUID    `json:"player_id"`
	Name     string       `json:"name"`
	HandSize int          `json:"hand_size"`
	Pool     models.Cards `json:"-"`
}

// PlayerView is a snapshot of the session from one side's perspective.
type PlayerView struct {
	GameID     uuid.UUID    `json:"game_id"`
	State      State        `json:"state"`
	Round      int          `json:"round"`
	PrizesLeft int          `json:"prizes_left"`
	Prize      models.Card  `json:"-"`
	Hand       models.Cards `json:"-"`
	Remaining  []int        `json:"remaining"`
	Pool       models.Cards `json:"-"`
	Discard    models.Cards `json:"-"`
	Opponent   OpponentView `json:"opponent"`
}

// ViewFor builds the snapshot the given side is allowed to see. During a
// round it never includes a bid, since bids are not stored until both sides
// have committed.
func (g *GoofspielGame) ViewFor(side SideID) PlayerView {
	self := g.seatFor(side)
	other := g.seatFor(SideB)
	if side == SideB {
		other = g.seatFor(SideA)
	}

	v := PlayerView{
		GameID:     g.ID,
		State:      g.state,
		Round:      g.round,
		PrizesLeft: len(g.prizes),
		Prize:      g.prize,
		Pool:       self.pool.Copy(),
		Discard:    g.discard.Copy(),
		Opponent: OpponentView{
			PlayerID: other.player.ID,
			Name:     other.player.Name,
			Pool:     other.pool.Copy(),
		},
	}
	if self.hand != nil {
		v.Hand = self.hand.Cards()
		v.Remaining = self.hand.RemainingIndices()
	}
	if other.hand != nil {
		v.Opponent.HandSize = other.hand.Len()
	}
	return v
}
