package cards

import "strconv"

// Card represents one of the numbered cards in the game.
// The zero value is not a valid card and marks an empty slot.
type Card uint8

const (
	// MinCard and MaxCard bound the numbered cards dealt face up.
	MinCard Card = 1
	MaxCard Card = 9
)

// NumCards is the number of distinct cards in play.
const NumCards = int(MaxCard - MinCard + 1)

// IsValid returns whether the Card is one of the numbered cards in play.
func (c Card) IsValid() bool {
	return c >= MinCard && c <= MaxCard
}

// String implements Stringer.
func (c Card) String() string {
	return strconv.Itoa(int(c))
}
