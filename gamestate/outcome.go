package gamestate

// Outcome is the result of a game, either realized at a terminal state
// or guaranteed under optimal play from a resolved state.
type Outcome uint8

const (
	// Unresolved is the zero value: the outcome is not yet known.
	Unresolved Outcome = iota
	PlayerTwoWins
	Draw
	PlayerOneWins
)

var outcomeStr = [...]string{
	"Unresolved",
	"PlayerTwoWins",
	"Draw",
	"PlayerOneWins",
}

func (o Outcome) String() string {
	return outcomeStr[o]
}

// IsResolved returns whether the Outcome is known.
func (o Outcome) IsResolved() bool {
	return o != Unresolved
}

// WinFor returns the Outcome in which the given player wins.
func WinFor(p Player) Outcome {
	if p == PlayerOne {
		return PlayerOneWins
	}

	return PlayerTwoWins
}

// Prefers returns whether player would rather have outcome a than b.
// PlayerOne maximizes over PlayerTwoWins < Draw < PlayerOneWins and
// PlayerTwo minimizes over the same order.
func Prefers(p Player, a, b Outcome) bool {
	if p == PlayerOne {
		return a > b
	}

	return a < b
}

// Extremal returns the outcome the given player would choose among outcomes:
// the maximum for PlayerOne and the minimum for PlayerTwo.
// Unresolved outcomes are ignored; if there are no others, Extremal
// returns Unresolved.
func Extremal(p Player, outcomes []Outcome) Outcome {
	best := Unresolved
	for _, o := range outcomes {
		if !o.IsResolved() {
			continue
		}

		if best == Unresolved || Prefers(p, o, best) {
			best = o
		}
	}

	return best
}
