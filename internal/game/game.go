// internal/game/game.go
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/goofspiel/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	// ErrWrongState is returned when a session operation is called out of order.
	ErrWrongState = errors.New("operation not valid in current game state")
	// ErrDuplicatePrize is returned when a fixed deal repeats a rank.
	ErrDuplicatePrize = errors.New("duplicate prize rank")
	// ErrMissingBidder is returned when a side has no bidder and none can be derived.
	ErrMissingBidder = errors.New("side has no bidder")
)

// State is the session's lifecycle stage.
type State int

const (
	StateSetup State = iota
	StatePlaying
	StateScoring
	StateDone
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StatePlaying:
		return "playing"
	case StateScoring:
		return "scoring"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// SideID names one of the two participants.
type SideID int

const (
	SideA SideID = iota
	SideB
)

func (s SideID) String() string {
	if s == SideA {
		return "a"
	}
	return "b"
}

// Winner is the final comparison of the two totals.
type Winner int

const (
	Draw Winner = iota
	WinnerA
	WinnerB
)

func (w Winner) String() string {
	switch w {
	case WinnerA:
		return "a"
	case WinnerB:
		return "b"
	}
	return "draw"
}

// Side configures one participant.
type Side struct {
	Player models.Player
	Bidder Bidder
}

// Options configures a new session. Zero values fall back to the standard
// game: prizes in Clubs, a human-named side A in Clubs, a computer side B
// in Spades whose bidder follows Rules.AutomatedStrategy.
type Options struct {
	Rules     HouseRules
	Rand      *rand.Rand
	Logger    logrus.FieldLogger
	PrizeSuit models.Suit
	SideA     Side
	SideB     Side

	// Deal, when set, fixes the prize order instead of shuffling. Prizes are
	// drawn from the end. Ranks must be distinct.
	Deal []int
}

// OnGameEndFunc is invoked once a session has been scored.
type OnGameEndFunc func(result Result)

// RoundResult records one resolved round.
type RoundResult struct {
	Round   int         `json:"round"`
	Prize   models.Card `json:"-"`
	BidA    int         `json:"bid_a"`
	BidB    int         `json:"bid_b"`
	Outcome Outcome     `json:"outcome"`
}

// Result is the scored end state of a session.
type Result struct {
	GameID  uuid.UUID
	PlayerA models.Player
	PlayerB models.Player
	TotalA  int
	TotalB  int
	Winner  Winner
	PoolA   models.Cards
	PoolB   models.Cards
	Discard models.Cards
}

type seat struct {
	player models.Player
	bidder Bidder
	hand   *Hand
	pool   models.Cards
}

// GoofspielGame holds the entire state for a single session in memory.
type GoofspielGame struct {
	ID         uuid.UUID
	HouseRules HouseRules

	a, b      seat
	prizeSuit models.Suit
	deal      []int
	prizes    models.Cards
	prize     models.Card // prize on the table during the current round
	discard   models.Cards

	state  State
	round  int
	rounds []RoundResult
	result *Result
	failed error

	rng    *rand.Rand
	logger logrus.FieldLogger
	clock  func() time.Time

	history     []ActionRecord
	actionIndex int

	// OnEvent observes every event. Bids reach it only after both sides committed.
	OnEvent func(ev GameEvent)

	// OnGameEnd is invoked at game end with the scored result.
	OnGameEnd OnGameEndFunc
}

// NewGoofspielGame builds a session in the setup state.
func NewGoofspielGame(opts Options) (*GoofspielGame, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate game id: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	rules := opts.Rules
	if rules.AutomatedStrategy == "" {
		rules.AutomatedStrategy = StrategyRandomLegalIndex
	}

	if err := validateDeal(opts.Deal); err != nil {
		return nil, err
	}

	a := opts.SideA
	if a.Player.ID == uuid.Nil {
		a.Player = models.NewPlayer(defaultName(a.Player.Name, "Player"), suitOr(a.Player, models.Clubs), true)
	}
	if a.Bidder == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingBidder, SideA)
	}

	b := opts.SideB
	if b.Player.ID == uuid.Nil {
		b.Player = models.NewPlayer(defaultName(b.Player.Name, "Computer"), suitOr(b.Player, models.Spades), false)
	}
	if b.Bidder == nil {
		bidder, err := NewAutomatedBidder(rules.AutomatedStrategy, rng)
		if err != nil {
			return nil, err
		}
		b.Bidder = bidder
	}

	g := &GoofspielGame{
		ID:         id,
		HouseRules: rules,
		a:          seat{player: a.Player, bidder: a.Bidder},
		b:          seat{player: b.Player, bidder: b.Bidder},
		prizeSuit:  opts.PrizeSuit,
		deal:       append([]int(nil), opts.Deal...),
		state:      StateSetup,
		rng:        rng,
	}
	g.logger = logger.WithField("game", id.String())
	return g, nil
}

func defaultName(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

// suitOr keeps a suit the caller set on an otherwise empty player. The zero
// suit is Clubs, so Clubs cannot be told apart from "unset" for side B.
func suitOr(p models.Player, def models.Suit) models.Suit {
	if p.Suit != models.Clubs {
		return p.Suit
	}
	return def
}

func validateDeal(deal []int) error {
	seen := make(map[int]bool, len(deal))
	for _, r := range deal {
		if _, err := models.NewCard(models.Clubs, r); err != nil {
			return err
		}
		if seen[r] {
			return fmt.Errorf("%w: %d", ErrDuplicatePrize, r)
		}
		seen[r] = true
	}
	return nil
}

// Setup deals the prize pool and both hands and empties every pile.
func (g *GoofspielGame) Setup() error {
	if g.state != StateSetup {
		return fmt.Errorf("%w: setup called while %s", ErrWrongState, g.state)
	}

	if len(g.deal) > 0 {
		g.prizes = make(models.Cards, 0, len(g.deal))
		for _, r := range g.deal {
			g.prizes = append(g.prizes, models.MustCard(g.prizeSuit, r))
		}
	} else {
		g.prizes = models.SuitRun(g.prizeSuit)
		g.rng.Shuffle(len(g.prizes), func(i, j int) {
			g.prizes[i], g.prizes[j] = g.prizes[j], g.prizes[i]
		})
	}

	g.a.hand = NewHand(g.a.player.Suit)
	g.b.hand = NewHand(g.b.player.Suit)
	g.a.pool = models.Cards{}
	g.b.pool = models.Cards{}
	g.discard = models.Cards{}
	g.rounds = nil
	g.round = 0
	g.state = StatePlaying

	g.logger.WithFields(logrus.Fields{
		"prizes": len(g.prizes),
		"a":      g.a.player.Name,
		"b":      g.b.player.Name,
	}).Debug("Dealt prize pool and hands")
	g.fireEvent(uuid.Nil, GameEvent{
		Type: EventGameSetup,
		Payload: map[string]interface{}{
			"prizes":     len(g.prizes),
			"player_a":   g.a.player.ID.String(),
			"player_b":   g.b.player.ID.String(),
			"allow_pass": g.HouseRules.AllowPass,
			"strategy":   string(g.HouseRules.AutomatedStrategy),
		},
	})
	return nil
}

// PlayRound draws the next prize, collects both bids, resolves the round
// and awards the prize. The last round moves the session to scoring.
func (g *GoofspielGame) PlayRound() (RoundResult, error) {
	if g.failed != nil {
		return RoundResult{}, g.failed
	}
	if g.state != StatePlaying {
		return RoundResult{}, fmt.Errorf("%w: play round called while %s", ErrWrongState, g.state)
	}

	g.prize = g.prizes[len(g.prizes)-1]
	g.prizes = g.prizes[:len(g.prizes)-1]
	g.round++
	prizeCard := toEventCard(g.prize)
	g.fireEvent(uuid.Nil, GameEvent{Type: EventRoundPrize, Round: g.round, Prize: prizeCard})

	bidA, err := g.a.bidder.Choose(g.a.hand)
	if err != nil {
		return RoundResult{}, g.fail(SideA, err)
	}
	bidB, err := g.b.bidder.Choose(g.b.hand)
	if err != nil {
		return RoundResult{}, g.fail(SideB, err)
	}
	g.fireEvent(uuid.Nil, GameEvent{Type: EventRoundBids, Round: g.round, Prize: prizeCard, BidA: &bidA, BidB: &bidB})

	outcome := Resolve(g.prize, bidA, bidB)
	var winnerID uuid.UUID
	switch outcome {
	case AWinsPrize:
		g.a.pool = append(g.a.pool, g.prize)
		winnerID = g.a.player.ID
	case BWinsPrize:
		g.b.pool = append(g.b.pool, g.prize)
		winnerID = g.b.player.ID
	case Tied:
		g.discard = append(g.discard, g.prize)
	}

	rr := RoundResult{Round: g.round, Prize: g.prize, BidA: bidA, BidB: bidB, Outcome: outcome}
	g.rounds = append(g.rounds, rr)

	g.logger.WithFields(logrus.Fields{
		"round":   g.round,
		"prize":   g.prize.String(),
		"bid_a":   bidA,
		"bid_b":   bidB,
		"outcome": outcome.String(),
	}).Debug("Round resolved")
	g.fireEvent(winnerID, GameEvent{
		Type:    EventRoundResolved,
		Round:   g.round,
		Prize:   prizeCard,
		BidA:    &bidA,
		BidB:    &bidB,
		Outcome: outcome.String(),
		Payload: map[string]interface{}{
			"pool_a":  len(g.a.pool),
			"pool_b":  len(g.b.pool),
			"discard": len(g.discard),
		},
	})

	g.prize = models.NoCard
	if len(g.prizes) == 0 {
		g.state = StateScoring
	}
	return rr, nil
}

func (g *GoofspielGame) fail(side SideID, err error) error {
	g.failed = fmt.Errorf("round %d: side %s bid: %w", g.round, side, err)
	if errors.Is(err, ErrHandExhausted) {
		g.logger.WithError(err).WithField("side", side.String()).Error("Automated bidder has no legal move")
	} else {
		g.logger.WithError(err).WithField("side", side.String()).Warn("Bid aborted")
	}
	return g.failed
}

// Score totals both pools, decides the winner and ends the session.
func (g *GoofspielGame) Score() (Result, error) {
	if g.state == StateDone && g.result != nil {
		return *g.result, nil
	}
	if g.state != StateScoring {
		return Result{}, fmt.Errorf("%w: score called while %s", ErrWrongState, g.state)
	}

	res := Result{
		GameID:  g.ID,
		PlayerA: g.a.player,
		PlayerB: g.b.player,
		TotalA:  g.a.pool.Total(),
		TotalB:  g.b.pool.Total(),
		PoolA:   g.a.pool.Copy(),
		PoolB:   g.b.pool.Copy(),
		Discard: g.discard.Copy(),
	}
	switch {
	case res.TotalA > res.TotalB:
		res.Winner = WinnerA
	case res.TotalA < res.TotalB:
		res.Winner = WinnerB
	default:
		res.Winner = Draw
	}
	g.result = &res
	g.state = StateDone

	var winnerID uuid.UUID
	switch res.Winner {
	case WinnerA:
		winnerID = g.a.player.ID
	case WinnerB:
		winnerID = g.b.player.ID
	}
	g.fireEvent(winnerID, GameEvent{
		Type: EventGameEnd,
		Payload: map[string]interface{}{
			"total_a": res.TotalA,
			"total_b": res.TotalB,
			"winner":  res.Winner.String(),
		},
	})
	g.logger.WithFields(logrus.Fields{
		"total_a": res.TotalA,
		"total_b": res.TotalB,
		"winner":  res.Winner.String(),
	}).Info("Game ended")

	if g.OnGameEnd != nil {
		g.OnGameEnd(res)
	}
	return res, nil
}

// Play runs the whole session from setup to done.
func (g *GoofspielGame) Play() (Result, error) {
	if g.state == StateSetup {
		if err := g.Setup(); err != nil {
			return Result{}, err
		}
	}
	for g.state == StatePlaying {
		if _, err := g.PlayRound(); err != nil {
			return Result{}, err
		}
	}
	return g.Score()
}

func (g *GoofspielGame) seatFor(side SideID) *seat {
	if side == SideA {
		return &g.a
	}
	return &g.b
}

func (g *GoofspielGame) State() State { return g.state }

// Round is the number of the round in progress or last played.
func (g *GoofspielGame) Round() int { return g.round }

func (g *GoofspielGame) PrizesLeft() int { return len(g.prizes) }

// CurrentPrize is the prize being bid on, or NoCard between rounds.
func (g *GoofspielGame) CurrentPrize() models.Card { return g.prize }

func (g *GoofspielGame) Player(side SideID) models.Player { return g.seatFor(side).player }

// Hand exposes a side's hand. It is nil before setup.
func (g *GoofspielGame) Hand(side SideID) *Hand { return g.seatFor(side).hand }

func (g *GoofspielGame) Pool(side SideID) models.Cards { return g.seatFor(side).pool.Copy() }

func (g *GoofspielGame) Discard() models.Cards { return g.discard.Copy() }

// Rounds returns every resolved round in order.
func (g *GoofspielGame) Rounds() []RoundResult {
	out := make([]RoundResult, len(g.rounds))
	copy(out, g.rounds)
	return out
}

// Err is the error that aborted the session, if any.
func (g *GoofspielGame) Err() error { return g.failed }
