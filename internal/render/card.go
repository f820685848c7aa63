// internal/render/card.go
package render

import (
	"fmt"
	"strings"

	"github.com/jason-s-yu/goofspiel/internal/models"
)

// CardHeight is the number of text lines in a drawn card.
const CardHeight = 5

// Lines is one drawn card, or several drawn side by side.
type Lines [CardHeight]string

// Card draws a single card as a 5-line box. NoCard draws as an empty box.
func Card(c models.Card) Lines {
	rank := c.RankSymbol()
	suit := c.SuitSymbol()
	return Lines{
		"┌─────┐",
		fmt.Sprintf("│%-2s   │", rank),
		fmt.Sprintf("│%-2s %2s│", suit, suit),
		fmt.Sprintf("│   %2s│", rank),
		"└─────┘",
	}
}

// Cards draws the cards next to each other, line by line.
func Cards(cs models.Cards) Lines {
	var out Lines
	var sb [CardHeight]strings.Builder
	for _, c := range cs {
		drawn := Card(c)
		for i := range drawn {
			sb[i].WriteString(drawn[i])
		}
	}
	for i := range sb {
		out[i] = sb[i].String()
	}
	return out
}

// String joins the lines with newlines, including a trailing one.
func (l Lines) String() string {
	var sb strings.Builder
	for _, line := range l {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
