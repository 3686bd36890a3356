package match

import (
	"bytes"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/fifteen"
	"github.com/timpalpant/fifteen/cards"
	"github.com/timpalpant/fifteen/gamestate"
)

var (
	solvedOnce sync.Once
	solvedTree *fifteen.GameNode
)

func solved() *fifteen.GameNode {
	solvedOnce.Do(func() {
		solvedTree = fifteen.BuildAndResolve()
	})

	return solvedTree
}

type lowestCardStrategy struct{}

func (lowestCardStrategy) Select(node *fifteen.GameNode) (*fifteen.GameNode, error) {
	return node.GetChild(0), nil
}

type strayStrategy struct{}

func (strayStrategy) Select(node *fifteen.GameNode) (*fifteen.GameNode, error) {
	return fifteen.NewGame(), nil
}

func TestPlay_OptimalVsOptimal(t *testing.T) {
	// Given: both seats play optimally
	var out bytes.Buffer
	m := New(solved(), gamestate.PlayerOne, fifteen.OptimalStrategy{}, fifteen.OptimalStrategy{}, &out)

	// When: the game is played out
	result, err := m.Play()

	// Then: it is a draw after every card is taken
	require.NoError(t, err)
	assert.Equal(t, gamestate.Draw, result.Outcome)
	assert.Len(t, result.Moves, cards.NumCards)
	assert.False(t, result.HumanWon())
	assert.True(t, m.Current().IsTerminal())
	assert.Contains(t, out.String(), "Turn 9")
	assert.Contains(t, out.String(), "Game over")
	assert.Contains(t, out.String(), "It's a draw.")
}

func TestPlay_OptimalNeverLoses(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	for i := 0; i < 200; i++ {
		human := gamestate.Player(i % 2)
		var out bytes.Buffer
		m := New(solved(), human, fifteen.NewRandomStrategy(rng), fifteen.OptimalStrategy{}, &out)

		result, err := m.Play()
		require.NoError(t, err)
		require.False(t, result.HumanWon(), "lost game %v", result.Moves)

		if result.Outcome == gamestate.Draw {
			require.Contains(t, out.String(), "It's a draw.")
		} else {
			require.Contains(t, out.String(), "I win.")
		}
	}
}

func TestPlay_ComputerAnnouncesMoves(t *testing.T) {
	// Given: the human always takes the lowest card as PlayerTwo
	var out bytes.Buffer
	m := New(solved(), gamestate.PlayerTwo, lowestCardStrategy{}, fifteen.OptimalStrategy{}, &out)

	// When: the game is played
	result, err := m.Play()
	require.NoError(t, err)

	// Then: the computer opened with the first optimal card
	best, err := solved().BestChild()
	require.NoError(t, err)
	assert.Equal(t, best.PrecedingMove(), result.Moves[0])
	assert.True(t, strings.HasPrefix(out.String(), "\nTurn 1\n"))
	assert.Contains(t, out.String(), "I choose "+best.PrecedingMove().String()+"\n")
	assert.Equal(t, gamestate.PlayerOneWins, result.Outcome)
	assert.Contains(t, out.String(), "I win.")
}

func TestPlay_StrayMove(t *testing.T) {
	m := New(solved(), gamestate.PlayerOne, strayStrategy{}, fifteen.OptimalStrategy{}, &bytes.Buffer{})

	_, err := m.Play()
	require.ErrorIs(t, err, fifteen.ErrIllegalMove)
}

func TestConsole_Select(t *testing.T) {
	// Given: a person who makes bad entries before choosing 5
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("abc\n12\n265\n-247\n0\n5\n"), &out)

	// When: asked for a move at the start of the game
	child, err := console.Select(solved())

	// Then: the bad entries are rejected and 5 is selected
	require.NoError(t, err)
	assert.Equal(t, cards.Card(5), child.PrecedingMove())
	assert.Contains(t, out.String(), `Invalid selection: "abc"`)
	assert.Contains(t, out.String(), "12 is not a card")
	assert.Contains(t, out.String(), "265 is not a card")
	assert.Contains(t, out.String(), "-247 is not a card")
	assert.Contains(t, out.String(), "0 is not a card")
	assert.Equal(t, 6, strings.Count(out.String(), "Which card would you like to pick? "))
}

func TestConsole_SelectTaken(t *testing.T) {
	node, err := solved().Child(5)
	require.NoError(t, err)

	var out bytes.Buffer
	console := NewConsole(strings.NewReader("5\n4"), &out)
	child, err := console.Select(node)
	require.NoError(t, err)
	assert.Equal(t, cards.Card(4), child.PrecedingMove())
	assert.Contains(t, out.String(), "5 is not available")
}

func TestConsole_AskSeat(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("3\n2\n"), &out)

	seat, err := console.AskSeat()
	require.NoError(t, err)
	assert.Equal(t, gamestate.PlayerTwo, seat)
	assert.Contains(t, out.String(), "Please enter 1 or 2")
}

func TestConsole_NoInput(t *testing.T) {
	console := NewConsole(strings.NewReader(""), &bytes.Buffer{})

	_, err := console.AskSeat()
	require.ErrorIs(t, err, ErrNoInput)

	m := New(solved(), gamestate.PlayerOne, console, fifteen.OptimalStrategy{}, &bytes.Buffer{})
	_, err = m.Play()
	require.ErrorIs(t, err, ErrNoInput)
}
