package gamestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/fifteen/cards"
)

func TestNew(t *testing.T) {
	gs := New()

	require.NoError(t, gs.Validate())
	assert.Equal(t, PlayerOne, gs.GetTurn())
	assert.Equal(t, 0, gs.GetPlayerHand(PlayerOne).Len())
	assert.Equal(t, 0, gs.GetPlayerHand(PlayerTwo).Len())
	assert.Equal(t, cards.Universe, gs.GetRemaining())
}

func TestApply(t *testing.T) {
	// Given: a new game
	gs := New()

	// When: PlayerOne selects 5 and PlayerTwo selects 3
	next := gs.Apply(5).Apply(3)

	// Then: each card is credited to the player who selected it
	require.NoError(t, next.Validate())
	assert.Equal(t, PlayerOne, next.GetTurn())
	assert.Equal(t, []cards.Card{5}, next.GetPlayerHand(PlayerOne).AsSlice())
	assert.Equal(t, []cards.Card{3}, next.GetPlayerHand(PlayerTwo).AsSlice())
	assert.False(t, next.GetRemaining().Contains(5))
	assert.False(t, next.GetRemaining().Contains(3))
	assert.Equal(t, 7, next.GetRemaining().Len())

	// Then: the original state is unchanged
	assert.Equal(t, New(), gs)
}

func TestApply_PanicsOnUnavailableCard(t *testing.T) {
	gs := New().Apply(4)

	assert.Panics(t, func() { gs.Apply(4) })
	assert.Panics(t, func() { gs.Apply(0) })
	assert.Panics(t, func() { gs.Apply(10) })
}

func TestEvaluate(t *testing.T) {
	t.Run("mover completes a triple", func(t *testing.T) {
		// Given: P1 holds {2, 6} and P2 holds {1, 9, 4, 3}
		gs, err := NewFromHands(PlayerOne,
			cards.NewHand([]cards.Card{2, 6}),
			cards.NewHand([]cards.Card{1, 9, 4, 3}))
		require.NoError(t, err)
		assert.Equal(t, cards.NewSetFromCards([]cards.Card{5, 7, 8}), gs.GetRemaining())

		// When: P1 selects 7
		next := gs.Apply(7)

		// Then: P1 has 2 + 6 + 7 = 15 and wins
		assert.Equal(t, PlayerOne, next.Mover())
		assert.Equal(t, PlayerOneWins, next.Evaluate())
	})

	t.Run("only the mover's hand is checked", func(t *testing.T) {
		// P2 already holds 1 + 9 + 5 but it is P1 who just moved.
		gs, err := NewFromHands(PlayerOne,
			cards.NewHand([]cards.Card{2, 3}),
			cards.NewHand([]cards.Card{1, 9, 5}))
		require.NoError(t, err)

		assert.Equal(t, Unresolved, gs.Apply(4).Evaluate())
	})

	t.Run("no cards remaining is a draw", func(t *testing.T) {
		gs, err := NewFromHands(PlayerOne,
			cards.NewHand([]cards.Card{1, 2, 3, 4}),
			cards.NewHand([]cards.Card{6, 7, 8, 9}))
		require.NoError(t, err)

		next := gs.Apply(5)
		assert.True(t, next.GetRemaining().IsEmpty())
		assert.Equal(t, Draw, next.Evaluate())
	})

	t.Run("game continues", func(t *testing.T) {
		assert.Equal(t, Unresolved, New().Apply(9).Evaluate())
	})
}

func TestNewFromHands_Invalid(t *testing.T) {
	_, err := NewFromHands(PlayerOne,
		cards.NewHand([]cards.Card{1, 2}),
		cards.NewHand([]cards.Card{2, 3}))
	require.Error(t, err)

	_, err = NewFromHands(PlayerTwo,
		cards.NewHand([]cards.Card{4, 4}),
		cards.NewHand(nil))
	require.Error(t, err)
}

func TestOutcomeOrdering(t *testing.T) {
	outcomes := []Outcome{Draw, PlayerTwoWins, PlayerOneWins}

	assert.Equal(t, PlayerOneWins, Extremal(PlayerOne, outcomes))
	assert.Equal(t, PlayerTwoWins, Extremal(PlayerTwo, outcomes))
	assert.Equal(t, Draw, Extremal(PlayerOne, []Outcome{Draw, PlayerTwoWins}))
	assert.Equal(t, Draw, Extremal(PlayerTwo, []Outcome{Draw, PlayerOneWins}))
	assert.Equal(t, Unresolved, Extremal(PlayerOne, nil))
	assert.Equal(t, Draw, Extremal(PlayerTwo, []Outcome{Unresolved, Draw}))

	assert.True(t, Prefers(PlayerOne, Draw, PlayerTwoWins))
	assert.True(t, Prefers(PlayerTwo, Draw, PlayerOneWins))
	assert.False(t, Prefers(PlayerOne, Draw, Draw))
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, PlayerTwo, PlayerOne.Opponent())
	assert.Equal(t, PlayerOne, PlayerTwo.Opponent())
	assert.Equal(t, 1, PlayerOne.Number())
	assert.Equal(t, 2, PlayerTwo.Number())
	assert.Equal(t, PlayerOneWins, WinFor(PlayerOne))
	assert.Equal(t, PlayerTwoWins, WinFor(PlayerTwo))
}
