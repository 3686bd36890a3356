package fifteen

import (
	"expvar"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/fifteen/cards"
	"github.com/timpalpant/fifteen/gamestate"
)

var (
	nodesBuilt         = expvar.NewInt("nodes_built")
	terminalNodesBuilt = expvar.NewInt("nodes_built/terminal")
	nodesResolved      = expvar.NewInt("nodes_resolved")
)

var (
	// ErrInvalidState is returned when a query does not apply to the node,
	// e.g. asking for the best move at a terminal node.
	ErrInvalidState = errors.New("invalid state")
	// ErrIncompleteTree is returned when a query needs values that
	// have not been computed by BuildTree and Resolve.
	ErrIncompleteTree = errors.New("game tree is not fully built and resolved")
	// ErrIllegalMove is returned when a card cannot be selected from a node.
	ErrIllegalMove = errors.New("illegal move")
)

// GameNode represents a position in the complete game tree.
type GameNode struct {
	state gamestate.GameState
	// precedingMove is the card selected to reach this node from its parent.
	// It is zero at the root.
	precedingMove cards.Card
	// value is set at construction for terminal nodes, and by Resolve
	// for all others.
	value gamestate.Outcome

	// children are the possible next states, one per remaining card,
	// in ascending order of the card selected.
	children []GameNode
	// parent is nil at the root. It is never used to modify the parent.
	parent *GameNode
}

// Move is an edge in the game tree: the card selected and the
// resulting node.
type Move struct {
	Card cards.Card
	Node *GameNode
}

// NewGame creates the root node for a new game.
// The root is never terminal, so no terminal check is performed.
func NewGame() *GameNode {
	return &GameNode{
		state: gamestate.New(),
	}
}

// NewGameFromState creates a root node for a game already in progress.
// A position that is already won or exhausted becomes a terminal root
// with its outcome set, and is never expanded.
func NewGameFromState(state gamestate.GameState) *GameNode {
	return &GameNode{
		state: state,
		value: state.Evaluate(),
	}
}

// BuildAndResolve builds the complete game tree and computes the
// minimax value of every node in it.
func BuildAndResolve() *GameNode {
	start := time.Now()
	root := NewGame()
	root.BuildTree()
	glog.V(2).Infof("Built game tree in %v", time.Since(start))
	value := root.Resolve()
	glog.V(2).Infof("Resolved game tree with value %v in %v", value, time.Since(start))
	return root
}

// newChild constructs the node reached by selecting card from parent,
// performing the terminal check for the player who selected it.
// newChild panics if card is not remaining in parent.
func newChild(parent *GameNode, card cards.Card) GameNode {
	state := parent.state.Apply(card)
	child := GameNode{
		state:         state,
		precedingMove: card,
		value:         state.Evaluate(),
		parent:        parent,
	}

	nodesBuilt.Add(1)
	if child.value.IsResolved() {
		terminalNodesBuilt.Add(1)
	}

	return child
}

// BuildTree recursively expands this node into every possible
// continuation of the game. Terminal nodes are not expanded.
// BuildTree must run to completion before Resolve is called.
func (gn *GameNode) BuildTree() {
	if gn.value.IsResolved() || len(gn.children) > 0 {
		return // Terminal, or already built.
	}

	remaining := gn.state.GetRemaining()
	// Children must be allocated up front so that pointers to them
	// (held by their own children as parent) remain valid.
	gn.children = make([]GameNode, 0, remaining.Len())
	remaining.Iter(func(card cards.Card) {
		gn.children = append(gn.children, newChild(gn, card))
		child := &gn.children[len(gn.children)-1]
		child.BuildTree()
	})
}

// Resolve recursively computes and returns the minimax value of this node.
// PlayerOne maximizes and PlayerTwo minimizes over
// PlayerTwoWins < Draw < PlayerOneWins.
//
// Resolve panics if it reaches a non-terminal node that was never expanded.
func (gn *GameNode) Resolve() gamestate.Outcome {
	if gn.value.IsResolved() {
		return gn.value
	}

	if len(gn.children) == 0 {
		panic(errors.Wrapf(ErrIncompleteTree, "cannot resolve unexpanded node: %v", gn))
	}

	values := make([]gamestate.Outcome, len(gn.children))
	for i := range gn.children {
		values[i] = gn.children[i].Resolve()
	}

	gn.value = gamestate.Extremal(gn.state.GetTurn(), values)
	nodesResolved.Add(1)
	return gn.value
}

// BestChild returns the child that the player to move should select
// under optimal play. Ties are broken by choosing the lowest card.
func (gn *GameNode) BestChild() (*GameNode, error) {
	if len(gn.children) == 0 {
		return nil, errors.Wrapf(ErrInvalidState, "no moves from terminal node: %v", gn)
	}

	if !gn.value.IsResolved() {
		return nil, errors.Wrapf(ErrIncompleteTree, "node is unresolved: %v", gn)
	}

	values := make([]gamestate.Outcome, len(gn.children))
	for i := range gn.children {
		values[i] = gn.children[i].value
		if !values[i].IsResolved() {
			return nil, errors.Wrapf(ErrIncompleteTree, "child %v is unresolved", gn.children[i].precedingMove)
		}
	}

	best := gamestate.Extremal(gn.state.GetTurn(), values)
	for i, value := range values {
		if value == best {
			return &gn.children[i], nil
		}
	}

	panic("unreachable")
}

// Child returns the node reached by selecting the given card.
func (gn *GameNode) Child(card cards.Card) (*GameNode, error) {
	if len(gn.children) == 0 {
		return nil, errors.Wrapf(ErrInvalidState, "no moves from terminal node: %v", gn)
	}

	for i := range gn.children {
		if gn.children[i].precedingMove == card {
			return &gn.children[i], nil
		}
	}

	return nil, errors.Wrapf(ErrIllegalMove, "card %v is not one of %v", card, gn.state.GetRemaining())
}

// GetChildren returns the available moves from this node,
// in ascending order of the card selected.
func (gn *GameNode) GetChildren() []Move {
	result := make([]Move, len(gn.children))
	for i := range gn.children {
		result[i] = Move{
			Card: gn.children[i].precedingMove,
			Node: &gn.children[i],
		}
	}

	return result
}

// CountNodes returns the number of nodes in the subtree rooted at
// this node, including itself.
func (gn *GameNode) CountNodes() int {
	total := 1
	for i := range gn.children {
		total += gn.children[i].CountNodes()
	}

	return total
}

// IsTerminal returns whether there are no moves from this node.
func (gn *GameNode) IsTerminal() bool {
	return len(gn.children) == 0
}

// Outcome returns the value of this node: the result of the game if it is
// terminal, or the result under optimal play once resolved.
func (gn *GameNode) Outcome() gamestate.Outcome {
	return gn.value
}

func (gn *GameNode) NumChildren() int {
	return len(gn.children)
}

func (gn *GameNode) GetChild(i int) *GameNode {
	return &gn.children[i]
}

func (gn *GameNode) Parent() *GameNode {
	return gn.parent
}

func (gn *GameNode) PrecedingMove() cards.Card {
	return gn.precedingMove
}

func (gn *GameNode) GetState() gamestate.GameState {
	return gn.state
}

func (gn *GameNode) Turn() gamestate.Player {
	return gn.state.GetTurn()
}

func (gn *GameNode) GetPlayerHand(p gamestate.Player) cards.Hand {
	return gn.state.GetPlayerHand(p)
}

func (gn *GameNode) GetRemaining() cards.Set {
	return gn.state.GetRemaining()
}

// History returns the cards selected to reach this node from the root,
// in the order they were selected.
func (gn *GameNode) History() []cards.Card {
	var result []cards.Card
	for node := gn; node.parent != nil; node = node.parent {
		result = append(result, node.precedingMove)
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return result
}

// String implements fmt.Stringer.
func (gn *GameNode) String() string {
	return fmt.Sprintf("%v (value: %v, %d children)", gn.state, gn.value, len(gn.children))
}
