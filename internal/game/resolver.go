package game

import "github.com/jason-s-yu/goofspiel/internal/models"

// Outcome is the result of comparing two bids.
type Outcome int

const (
	Tied Outcome = iota
	AWinsPrize
	BWinsPrize
)

func (o Outcome) String() string {
	switch o {
	case AWinsPrize:
		return "a_wins"
	case BWinsPrize:
		return "b_wins"
	case Tied:
		return "tied"
	}
	return "unknown"
}

// Swap returns the outcome seen from the other side.
func (o Outcome) Swap() Outcome {
	switch o {
	case AWinsPrize:
		return BWinsPrize
	case BWinsPrize:
		return AWinsPrize
	}
	return o
}

// Resolve compares the two bids. Only the bids decide the winner; the
// prize's rank matters later, when pools are totalled.
func Resolve(prize models.Card, bidA, bidB int) Outcome {
	switch {
	case bidA > bidB:
		return AWinsPrize
	case bidA < bidB:
		return BWinsPrize
	}
	return Tied
}
