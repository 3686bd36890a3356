package fifteen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/fifteen/cards"
	"github.com/timpalpant/fifteen/gamestate"
)

type firstMoveStrategy struct{}

func (firstMoveStrategy) Select(node *GameNode) (*GameNode, error) {
	return node.GetChild(0), nil
}

type strayStrategy struct{}

func (strayStrategy) Select(node *GameNode) (*GameNode, error) {
	return NewGame(), nil
}

func TestSampleHistory(t *testing.T) {
	root := solved()
	rng := rand.New(rand.NewSource(123))
	s := NewRandomStrategy(rng)
	for i := 0; i < 100; i++ {
		leaf, err := SampleHistory(root, [2]Strategy{s, s})
		require.NoError(t, err)
		require.True(t, leaf.IsTerminal())
		require.True(t, leaf.Outcome().IsResolved())
	}
}

func TestSampleHistory_OptimalNeverLoses(t *testing.T) {
	root := solved()
	random := NewRandomStrategy(rand.New(rand.NewSource(42)))
	for i := 0; i < 200; i++ {
		leaf, err := SampleHistory(root, [2]Strategy{OptimalStrategy{}, random})
		require.NoError(t, err)
		require.NotEqual(t, gamestate.PlayerTwoWins, leaf.Outcome(), "lost game %v", leaf.History())

		leaf, err = SampleHistory(root, [2]Strategy{random, OptimalStrategy{}})
		require.NoError(t, err)
		require.NotEqual(t, gamestate.PlayerOneWins, leaf.Outcome(), "lost game %v", leaf.History())
	}
}

func TestSampleHistory_FirstMoves(t *testing.T) {
	// Taking cards in ascending order, PlayerOne completes 3 + 5 + 7
	// with the seventh card while PlayerTwo holds 2, 4, 6.
	leaf, err := SampleHistory(solved(), [2]Strategy{firstMoveStrategy{}, firstMoveStrategy{}})
	require.NoError(t, err)

	assert.Equal(t, gamestate.PlayerOneWins, leaf.Outcome())
	assert.Equal(t, []cards.Card{1, 2, 3, 4, 5, 6, 7}, leaf.History())
}

func TestSampleHistory_StrayMove(t *testing.T) {
	_, err := SampleHistory(solved(), [2]Strategy{strayStrategy{}, OptimalStrategy{}})
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestRandomStrategy_Terminal(t *testing.T) {
	leaf, err := SampleHistory(solved(), [2]Strategy{OptimalStrategy{}, OptimalStrategy{}})
	require.NoError(t, err)

	_, err = NewRandomStrategy(rand.New(rand.NewSource(1))).Select(leaf)
	require.ErrorIs(t, err, ErrInvalidState)
}

func BenchmarkSampleHistory(b *testing.B) {
	root := solved()
	s := NewRandomStrategy(rand.New(rand.NewSource(123)))
	for i := 0; i < b.N; i++ {
		SampleHistory(root, [2]Strategy{s, s})
	}
}
