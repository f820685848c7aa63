// internal/models/card.go
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Rank bounds shared by every regular card.
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13

	// RanksPerSuit is the number of regular cards in one suit.
	RanksPerSuit = King - Ace + 1
)

var (
	// ErrInvalidRank is returned when a regular card is built with a rank outside [Ace, King].
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidSuit is returned for a suit that is not one of the four French suits.
	ErrInvalidSuit = errors.New("invalid suit")
)

// Suit is one of the four French suits. The numeric values match the byte encoding.
type Suit uint8

const (
	Clubs Suit = iota
	Hearts
	Spades
	Diamonds
)

// Suits lists every suit in encoding order.
var Suits = []Suit{Clubs, Hearts, Spades, Diamonds}

func (s Suit) valid() bool {
	return s <= Diamonds
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case Diamonds:
		return "Diamonds"
	}
	return "Unknown"
}

// Symbol returns the unicode glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	}
	return "?"
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit accepts a full suit name or its first letter, case-insensitively.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "clubs":
		return Clubs, nil
	case "h", "hearts":
		return Hearts, nil
	case "s", "spades":
		return Spades, nil
	case "d", "diamonds":
		return Diamonds, nil
	}
	return Clubs, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

type cardKind uint8

const (
	kindNone cardKind = iota
	kindJoker
	kindRegular
)

// Card is an immutable playing card: either no card, a joker, or a regular
// (suit, rank) pair. The zero value is NoCard.
type Card struct {
	kind cardKind
	suit Suit
	rank uint8
}

var (
	// NoCard is the empty placeholder.
	NoCard = Card{}
	// JokerCard carries neither suit nor rank.
	JokerCard = Card{kind: kindJoker}
)

// NewCard builds a regular card. Ranks outside [Ace, King] are rejected, never clamped.
func NewCard(suit Suit, rank int) (Card, error) {
	if !suit.valid() {
		return NoCard, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	if rank < Ace || rank > King {
		return NoCard, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	return Card{kind: kindRegular, suit: suit, rank: uint8(rank)}, nil
}

// MustCard is NewCard for ranks known to be valid. It panics otherwise.
func MustCard(suit Suit, rank int) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the card's rank; ok is false for NoCard and JokerCard.
func (c Card) Rank() (rank int, ok bool) {
	if c.kind != kindRegular {
		return 0, false
	}
	return int(c.rank), true
}

// Suit returns the card's suit; ok is false for NoCard and JokerCard.
func (c Card) Suit() (Suit, bool) {
	if c.kind != kindRegular {
		return Clubs, false
	}
	return c.suit, true
}

func (c Card) IsNone() bool  { return c.kind == kindNone }
func (c Card) IsJoker() bool { return c.kind == kindJoker }

// Value is the card's worth when a pool is totalled: its rank, or 0 when it has none.
func (c Card) Value() int {
	r, _ := c.Rank()
	return r
}

// RankSymbol returns the short rank label (A, 2..10, J, Q, K, ★ for jokers, empty for none).
func (c Card) RankSymbol() string {
	switch c.kind {
	case kindNone:
		return ""
	case kindJoker:
		return "★"
	}
	switch c.rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return fmt.Sprintf("%d", c.rank)
}

// SuitSymbol returns the suit glyph, or a blank for cards without a suit.
func (c Card) SuitSymbol() string {
	if c.kind != kindRegular {
		return " "
	}
	return c.suit.Symbol()
}

var rankNames = [...]string{"Invalid", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King"}

// Name returns the long form, e.g. "Queen of Hearts".
func (c Card) Name() string {
	switch c.kind {
	case kindNone:
		return "None"
	case kindJoker:
		return "Joker"
	}
	return rankNames[c.rank] + " of " + c.suit.String()
}

// String returns the short form, e.g. "Q♥".
func (c Card) String() string {
	switch c.kind {
	case kindNone:
		return "-"
	case kindJoker:
		return "★"
	}
	return c.RankSymbol() + c.suit.Symbol()
}

// Byte layout:
//
//	1xxx_xxxx  none
//	01xx_xxxx  joker
//	00ss_rrrr  regular, suit ss, rank rrrr+1
const (
	noneByte  byte = 0b1100_0000
	jokerByte byte = 0b0100_0000
)

// Byte packs the card into a single byte.
func (c Card) Byte() byte {
	switch c.kind {
	case kindRegular:
		return byte(c.suit)<<4 | (c.rank - 1)
	case kindJoker:
		return jokerByte
	}
	return noneByte
}

// CardFromByte decodes a byte written by Card.Byte. Regular encodings whose
// rank falls outside [Ace, King] decode to NoCard.
func CardFromByte(b byte) Card {
	switch b >> 6 {
	case 0b11, 0b10:
		return NoCard
	case 0b01:
		return JokerCard
	}
	rank := int(b&0b0000_1111) + 1
	suit := Suit((b & 0b0011_0000) >> 4)
	c, err := NewCard(suit, rank)
	if err != nil {
		return NoCard
	}
	return c
}

// Cards is a multiset of cards such as a pool or a discard pile.
type Cards []Card

// Total sums the value of every card; cards without a rank count as zero.
func (cs Cards) Total() int {
	sum := 0
	for _, c := range cs {
		sum += c.Value()
	}
	return sum
}

// Ranks returns the ranks of the regular cards in order.
func (cs Cards) Ranks() []int {
	ranks := make([]int, 0, len(cs))
	for _, c := range cs {
		if r, ok := c.Rank(); ok {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

func (cs Cards) Copy() Cards {
	out := make(Cards, len(cs))
	copy(out, cs)
	return out
}

// SuitRun builds the 13 regular cards of one suit in rank order.
func SuitRun(suit Suit) Cards {
	cs := make(Cards, 0, RanksPerSuit)
	for r := Ace; r <= King; r++ {
		cs = append(cs, MustCard(suit, r))
	}
	return cs
}
