package fifteen

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Strategy selects the next move from a non-terminal node.
type Strategy interface {
	Select(node *GameNode) (*GameNode, error)
}

// OptimalStrategy plays the minimax-optimal move at every turn.
// It requires a resolved tree.
type OptimalStrategy struct{}

func (OptimalStrategy) Select(node *GameNode) (*GameNode, error) {
	return node.BestChild()
}

// RandomStrategy selects uniformly at random among the available moves.
type RandomStrategy struct {
	rng *rand.Rand
}

func NewRandomStrategy(rng *rand.Rand) RandomStrategy {
	return RandomStrategy{rng: rng}
}

func (s RandomStrategy) Select(node *GameNode) (*GameNode, error) {
	if node.IsTerminal() {
		return nil, errors.Wrapf(ErrInvalidState, "no moves from terminal node: %v", node)
	}

	return node.GetChild(s.rng.Intn(node.NumChildren())), nil
}

// SampleHistory plays a game from root until it is finished, with
// strategies[p] selecting every move for player p. It returns the leaf
// that was reached; its History is the sequence of cards selected.
func SampleHistory(root *GameNode, strategies [2]Strategy) (*GameNode, error) {
	node := root
	for !node.IsTerminal() {
		next, err := SampleOne(node, strategies[node.Turn()])
		if err != nil {
			return nil, err
		}

		node = next
	}

	return node, nil
}

// SampleOne asks s for the next move from gn and checks that it is
// one of gn's children.
func SampleOne(gn *GameNode, s Strategy) (*GameNode, error) {
	next, err := s.Select(gn)
	if err != nil {
		return nil, errors.Wrapf(err, "%v failed to select a move", gn.Turn())
	}

	if next == nil || next.parent != gn {
		return nil, errors.Wrapf(ErrIllegalMove, "%v selected a node that does not follow %v",
			gn.Turn(), gn.History())
	}

	return next, nil
}
