package models

import "github.com/google/uuid"

// Player identifies one side of a session. Hands, pools and bids live in the
// session; a Player only carries identity and the suit its hand is dealt in.
type Player struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Suit  Suit      `json:"suit"`
	Human bool      `json:"human"`
}

// NewPlayer assigns a fresh random ID.
func NewPlayer(name string, suit Suit, human bool) Player {
	return Player{ID: uuid.New(), Name: name, Suit: suit, Human: human}
}
