// Package match plays a game between a person and the solver over a
// fully built and resolved game tree.
package match

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/fifteen"
	"github.com/timpalpant/fifteen/cards"
	"github.com/timpalpant/fifteen/gamestate"
)

// Result summarizes a finished game.
type Result struct {
	HumanPlayer gamestate.Player
	Moves       []cards.Card
	Outcome     gamestate.Outcome
}

// HumanWon returns whether the person at the console won the game.
func (r *Result) HumanWon() bool {
	return r.Outcome == gamestate.WinFor(r.HumanPlayer)
}

// Match walks a cursor from the root of a solved tree to a leaf,
// asking the strategy for each seat to choose the next move.
type Match struct {
	cursor *fifteen.GameNode
	human  gamestate.Player
	seats  [2]fifteen.Strategy
	out    io.Writer
}

// New creates a Match starting at root, in which the person in seat human
// plays using their strategy and the other seat plays opponent.
func New(root *fifteen.GameNode, human gamestate.Player, person, opponent fifteen.Strategy, out io.Writer) *Match {
	m := &Match{
		cursor: root,
		human:  human,
		out:    out,
	}

	m.seats[human] = person
	m.seats[human.Opponent()] = opponent
	return m
}

// Play runs the game to completion and returns its Result.
func (m *Match) Play() (*Result, error) {
	for turn := 1; !m.cursor.IsTerminal(); turn++ {
		fmt.Fprintf(m.out, "\nTurn %d\n", turn)
		m.printHoldings()

		player := m.cursor.Turn()
		next, err := fifteen.SampleOne(m.cursor, m.seats[player])
		if err != nil {
			return nil, errors.Wrapf(err, "turn %d", turn)
		}

		glog.V(1).Infof("%v selected %v", player, next.PrecedingMove())
		if player != m.human {
			fmt.Fprintf(m.out, "I choose %v\n", next.PrecedingMove())
		}

		m.cursor = next
	}

	result := &Result{
		HumanPlayer: m.human,
		Moves:       m.cursor.History(),
		Outcome:     m.cursor.Outcome(),
	}

	fmt.Fprintf(m.out, "\nGame over\n")
	m.printHoldings()
	switch {
	case result.Outcome == gamestate.Draw:
		fmt.Fprintln(m.out, "It's a draw.")
	case result.HumanWon():
		fmt.Fprintln(m.out, "You win.")
	default:
		fmt.Fprintln(m.out, "I win.")
	}

	return result, nil
}

// Current returns the node the match has reached.
func (m *Match) Current() *fifteen.GameNode {
	return m.cursor
}

func (m *Match) printHoldings() {
	fmt.Fprintf(m.out, "Remaining cards:  %v\n", m.cursor.GetRemaining())
	fmt.Fprintf(m.out, "Player 1's cards: %v\n", m.cursor.GetPlayerHand(gamestate.PlayerOne))
	fmt.Fprintf(m.out, "Player 2's cards: %v\n", m.cursor.GetPlayerHand(gamestate.PlayerTwo))
}
