// internal/game/events.go
package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/goofspiel/internal/models"
)

// GameEventType is an enum-like type for broadcasting game actions.
type GameEventType string

const (
	EventGameSetup     GameEventType = "game_setup"     // prize pool and hands dealt
	EventRoundPrize    GameEventType = "round_prize"    // prize revealed, before anyone bids
	EventRoundBids     GameEventType = "round_bids"     // both bids, only once both are committed
	EventRoundResolved GameEventType = "round_resolved" // who took the prize
	EventGameEnd       GameEventType = "game_end"       // totals and winner
)

// EventCard identifies a card within an event payload.
type EventCard struct {
	Rank  int    `json:"rank,omitempty"`
	Suit  string `json:"suit,omitempty"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func toEventCard(c models.Card) *EventCard {
	ec := &EventCard{Name: c.Name(), Value: c.Value()}
	if r, ok := c.Rank(); ok {
		ec.Rank = r
	}
	if s, ok := c.Suit(); ok {
		ec.Suit = s.String()
	}
	return ec
}

// GameEvent holds data about an event in a consistent format for observers.
type GameEvent struct {
	Type   GameEventType `json:"type"`
	GameID uuid.UUID     `json:"game_id"`
	Round  int           `json:"round,omitempty"`
	Prize  *EventCard    `json:"prize,omitempty"`

	// Bids are only populated on EventRoundBids and later events of the same round.
	BidA *int `json:"bid_a,omitempty"`
	BidB *int `json:"bid_b,omitempty"`

	Outcome string                 `json:"outcome,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// ActionRecord is one entry of a session's action history, in play order.
type ActionRecord struct {
	GameID        uuid.UUID              `json:"game_id"`
	ActionIndex   int                    `json:"action_index"`
	ActorID       uuid.UUID              `json:"actor_id"`
	ActionType    string                 `json:"action_type"`
	ActionPayload map[string]interface{} `json:"action_payload"`
	Timestamp     int64                  `json:"timestamp"`
}

// fireEvent records the event in the history and hands it to the observer.
func (g *GoofspielGame) fireEvent(actorID uuid.UUID, ev GameEvent) {
	ev.GameID = g.ID
	g.logAction(actorID, ev)
	if g.OnEvent != nil {
		g.OnEvent(ev)
	}
}

func (g *GoofspielGame) logAction(actorID uuid.UUID, ev GameEvent) {
	g.actionIndex++
	payload := make(map[string]interface{}, len(ev.Payload)+4)
	for k, v := range ev.Payload {
		payload[k] = v
	}
	if ev.Round > 0 {
		payload["round"] = ev.Round
	}
	if ev.Prize != nil {
		payload["prize"] = ev.Prize.Rank
	}
	if ev.BidA != nil && ev.BidB != nil {
		payload["bid_a"] = *ev.BidA
		payload["bid_b"] = *ev.BidB
	}
	if ev.Outcome != "" {
		payload["outcome"] = ev.Outcome
	}
	g.history = append(g.history, ActionRecord{
		GameID:        g.ID,
		ActionIndex:   g.actionIndex,
		ActorID:       actorID,
		ActionType:    string(ev.Type),
		ActionPayload: payload,
		Timestamp:     g.now().UnixMilli(),
	})
}

// History returns a copy of the session's action log.
func (g *GoofspielGame) History() []ActionRecord {
	out := make([]ActionRecord, len(g.history))
	copy(out, g.history)
	return out
}

func (g *GoofspielGame) now() time.Time {
	if g.clock != nil {
		return g.clock()
	}
	return time.Now()
}
