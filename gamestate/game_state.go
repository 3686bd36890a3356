package gamestate

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/timpalpant/fifteen/cards"
)

// GameState represents one position in the game. It is a small value type
// and is never modified in place: Apply returns a new GameState.
type GameState struct {
	// The player whose turn it is to select a card.
	turn Player
	// The cards each player has selected, in the order they selected them.
	playerOneHand cards.Hand
	playerTwoHand cards.Hand
	// Cards not yet selected by either player.
	remaining cards.Set
}

// New returns the GameState at the start of a game: both hands empty,
// every card remaining and PlayerOne to move.
func New() GameState {
	return GameState{
		turn:      PlayerOne,
		remaining: cards.Universe,
	}
}

// NewFromHands returns a GameState with the given holdings.
// The remaining cards are those in neither hand.
// It returns an error if the hands overlap or contain invalid cards.
func NewFromHands(turn Player, playerOneHand, playerTwoHand cards.Hand) (GameState, error) {
	gs := GameState{
		turn:          turn,
		playerOneHand: playerOneHand,
		playerTwoHand: playerTwoHand,
	}

	held := playerOneHand.AsSet().Union(playerTwoHand.AsSet())
	cards.Universe.Iter(func(card cards.Card) {
		if !held.Contains(card) {
			gs.remaining.Add(card)
		}
	})

	if err := gs.Validate(); err != nil {
		return GameState{}, errors.Wrap(err, "invalid holdings")
	}

	return gs, nil
}

// Apply returns the GameState after the player to move selects card.
// Apply panics if card is not remaining: only cards drawn from
// GetRemaining may be selected.
func (gs GameState) Apply(card cards.Card) GameState {
	if !gs.remaining.Contains(card) {
		panic(errors.Errorf("card %v is not remaining in %v", card, gs.remaining))
	}

	result := gs
	if gs.turn == PlayerOne {
		result.playerOneHand = gs.playerOneHand.Append(card)
	} else {
		result.playerTwoHand = gs.playerTwoHand.Append(card)
	}
	result.remaining.Remove(card)
	result.turn = gs.turn.Opponent()
	return result
}

// Mover returns the player who selected the last card, i.e. the opponent
// of the player to move.
func (gs GameState) Mover() Player {
	return gs.turn.Opponent()
}

// Evaluate performs the terminal check for a state just reached by Apply:
// the mover wins if any three of their cards sum to cards.Goal; otherwise
// the game is drawn if no cards remain. It returns Unresolved if the
// game continues.
func (gs GameState) Evaluate() Outcome {
	mover := gs.Mover()
	if gs.GetPlayerHand(mover).HasTripleSumming(cards.Goal) {
		return WinFor(mover)
	}

	if gs.remaining.IsEmpty() {
		return Draw
	}

	return Unresolved
}

// Validate sanity checks the GameState to ensure the hands and the
// remaining cards partition the card universe exactly.
func (gs GameState) Validate() error {
	p1 := gs.playerOneHand.AsSet()
	p2 := gs.playerTwoHand.AsSet()
	if p1.Len() != gs.playerOneHand.Len() {
		return errors.Errorf("player %v holds duplicate cards: %v", PlayerOne, gs.playerOneHand)
	}
	if p2.Len() != gs.playerTwoHand.Len() {
		return errors.Errorf("player %v holds duplicate cards: %v", PlayerTwo, gs.playerTwoHand)
	}

	if overlap := p1.Intersection(p2); !overlap.IsEmpty() {
		return errors.Errorf("cards %v held by both players", overlap)
	}
	if overlap := p1.Union(p2).Intersection(gs.remaining); !overlap.IsEmpty() {
		return errors.Errorf("cards %v both held and remaining", overlap)
	}

	if all := p1.Union(p2).Union(gs.remaining); all != cards.Universe {
		return errors.Errorf("cards %v do not match universe %v", all, cards.Universe)
	}

	if gs.turn != PlayerOne && gs.turn != PlayerTwo {
		return errors.Errorf("invalid player to move: %d", gs.turn)
	}

	return nil
}

func (gs GameState) GetTurn() Player {
	return gs.turn
}

func (gs GameState) GetPlayerHand(p Player) cards.Hand {
	if p == PlayerOne {
		return gs.playerOneHand
	}

	return gs.playerTwoHand
}

func (gs GameState) GetRemaining() cards.Set {
	return gs.remaining
}

func (gs GameState) String() string {
	return fmt.Sprintf("%v to move. remaining: %s, p1: %s, p2: %s",
		gs.turn, gs.remaining, gs.playerOneHand, gs.playerTwoHand)
}
