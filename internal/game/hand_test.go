package game

import (
	"testing"

	"github.com/jason-s-yu/goofspiel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allRanks() []int {
	out := make([]int, 0, models.RanksPerSuit)
	for r := models.Ace; r <= models.King; r++ {
		out = append(out, r)
	}
	return out
}

func TestNewHandIsFull(t *testing.T) {
	h := NewHand(models.Spades)
	assert.Equal(t, allRanks(), h.RemainingIndices())
	assert.Equal(t, 13, h.Len())
	assert.Equal(t, models.Spades, h.Suit())
	for i, c := range h.Cards() {
		r, ok := c.Rank()
		require.True(t, ok)
		assert.Equal(t, i+1, r)
	}
}

func TestHandPlay(t *testing.T) {
	h := NewHand(models.Clubs)

	rank, err := h.Play(5)
	require.NoError(t, err)
	assert.Equal(t, 5, rank)
	assert.NotContains(t, h.RemainingIndices(), 5)
	assert.Len(t, h.RemainingIndices(), 12)
	assert.False(t, h.IsPlayable(5))
	assert.True(t, h.Cards()[4].IsNone())

	_, err = h.Play(5)
	assert.ErrorIs(t, err, ErrInvalidBidIndex)
	assert.Len(t, h.RemainingIndices(), 12, "failed play leaves the hand alone")
}

func TestHandIsPlayableBounds(t *testing.T) {
	h := NewHand(models.Clubs)
	for _, idx := range []int{-1, 0, 14} {
		assert.False(t, h.IsPlayable(idx), "index %d", idx)
		_, err := h.Play(idx)
		assert.ErrorIs(t, err, ErrInvalidBidIndex)
	}
	assert.True(t, h.IsPlayable(1))
	assert.True(t, h.IsPlayable(13))
}

func TestHandPlayEverySlot(t *testing.T) {
	h := NewHand(models.Hearts)
	for _, r := range allRanks() {
		_, err := h.Play(r)
		require.NoError(t, err)
	}
	assert.Empty(t, h.RemainingIndices())
	assert.Equal(t, 0, h.Len())
}
