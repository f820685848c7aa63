// internal/game/rules.go
package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned when an automated strategy name cannot be parsed.
var ErrUnknownStrategy = errors.New("unknown automated strategy")

// Strategy selects how an automated bidder picks its card.
type Strategy string

const (
	// StrategyRandomLegalIndex picks uniformly among the playable slots each round.
	StrategyRandomLegalIndex Strategy = "random"
	// StrategySequentialShuffledDraw shuffles the hand once and plays it front to back.
	StrategySequentialShuffledDraw Strategy = "sequential"
)

// ParseStrategy accepts the short names above, case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyRandomLegalIndex:
		return StrategyRandomLegalIndex, nil
	case StrategySequentialShuffledDraw:
		return StrategySequentialShuffledDraw, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// HouseRules defines the optional rule switches a session can be played with.
type HouseRules struct {
	AllowPass         bool     `json:"allowPass"`         // a human may bid 0 to pass without spending a card
	AutomatedStrategy Strategy `json:"automatedStrategy"` // how the computer side picks its bid
}

// DefaultHouseRules is the canonical rule set: no passing, random legal bids.
func DefaultHouseRules() HouseRules {
	return HouseRules{
		AllowPass:         false,
		AutomatedStrategy: StrategyRandomLegalIndex,
	}
}

// Update will update the house rules with the new rules provided.
// If a rule is not set or defined, it will be ignored, and the old value will persist.
func (rules *HouseRules) Update(newRules map[string]interface{}) error {
	if val, exists := newRules["allowPass"]; exists && val != nil {
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("invalid type for allowPass")
		}
		rules.AllowPass = b
	}

	if val, exists := newRules["automatedStrategy"]; exists && val != nil {
		name, ok := val.(string)
		if !ok {
			return fmt.Errorf("invalid type for automatedStrategy")
		}
		s, err := ParseStrategy(name)
		if err != nil {
			return err
		}
		rules.AutomatedStrategy = s
	}

	return nil
}

// ParseRules converts a map of rules to a HouseRules struct. It will ensure the types are valid.
func ParseRules(rules map[string]interface{}, current HouseRules) (HouseRules, error) {
	houseRules := current
	err := houseRules.Update(rules)
	return houseRules, err
}
