package fifteen

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/fifteen/gamestate"
)

// Visit calls visitor on every node in the subtree rooted at root,
// in depth-first pre-order.
func Visit(root *GameNode, visitor func(node *GameNode)) {
	visitor(root)
	for i := range root.children {
		Visit(&root.children[i], visitor)
	}
}

// CountTerminalNodes returns the number of leaves in the subtree
// rooted at root, i.e. the number of complete games.
func CountTerminalNodes(root *GameNode) int {
	total := 0
	Visit(root, func(node *GameNode) {
		if node.IsTerminal() {
			total++
		}
	})

	return total
}

// Validate sanity checks every node in the built and resolved subtree
// rooted at root, returning an error describing the first inconsistency.
func Validate(root *GameNode) error {
	var err error
	Visit(root, func(node *GameNode) {
		if err == nil {
			err = validateNode(node)
		}
	})

	return err
}

func validateNode(gn *GameNode) error {
	if err := gn.state.Validate(); err != nil {
		return errors.Wrapf(err, "node %v", gn.History())
	}

	if !gn.value.IsResolved() {
		return errors.Wrapf(ErrIncompleteTree, "node %v is unresolved", gn.History())
	}

	if gn.parent != nil {
		if err := validateEdge(gn.parent, gn); err != nil {
			return errors.Wrapf(err, "node %v", gn.History())
		}
	}

	if gn.IsTerminal() {
		if terminal := gn.state.Evaluate(); terminal != gn.value {
			return errors.Errorf("leaf %v has value %v, but terminal check gives %v",
				gn.History(), gn.value, terminal)
		}

		return nil
	}

	if gn.state.Evaluate().IsResolved() {
		return errors.Errorf("finished game %v was expanded", gn.History())
	}

	if len(gn.children) != gn.state.GetRemaining().Len() {
		return errors.Errorf("node %v has %d children but %d remaining cards",
			gn.History(), len(gn.children), gn.state.GetRemaining().Len())
	}

	values := make([]gamestate.Outcome, len(gn.children))
	for i := range gn.children {
		values[i] = gn.children[i].value
	}

	if best := gamestate.Extremal(gn.state.GetTurn(), values); best != gn.value {
		return errors.Errorf("node %v has value %v, but best child value for %v is %v",
			gn.History(), gn.value, gn.state.GetTurn(), best)
	}

	return nil
}

func validateEdge(parent, child *GameNode) error {
	if child.state.GetTurn() != parent.state.GetTurn().Opponent() {
		return errors.Errorf("turn did not alternate: %v -> %v",
			parent.state.GetTurn(), child.state.GetTurn())
	}

	if !parent.state.GetRemaining().Contains(child.precedingMove) {
		return errors.Errorf("card %v was not remaining in parent", child.precedingMove)
	}

	moverHand := child.state.GetPlayerHand(parent.state.GetTurn())
	if moverHand.NthCard(moverHand.Len()-1) != child.precedingMove {
		return errors.Errorf("card %v was not credited to %v", child.precedingMove, parent.state.GetTurn())
	}

	return nil
}
