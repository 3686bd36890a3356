package cards

import (
	"fmt"
	"math/bits"
	"strings"
)

// Minimum number of bits required to store the identity of a card.
var (
	bitsPerCard = uint(bits.Len(uint(MaxCard)))
	cardMask    = Hand(1<<bitsPerCard) - 1
	maxCapacity = int(64 / bitsPerCard)
)

// Hand represents the ordered sequence of cards a player has selected.
//
// The hand is encoded as a hexadecimal integer, where each digit (4 bits)
// is the identity of a Card. The first card selected is the lowest order
// digit. Since Card 0 is never dealt, the length of the Hand is the number
// of non-zero digits.
type Hand uint64

func assertWithinRange(n int) {
	if n < 0 || n >= maxCapacity {
		panic(fmt.Errorf("card position %d is out of range for Hand", n))
	}
}

// NewHand creates a new Hand from the given slice of Cards, in order.
func NewHand(cards []Card) Hand {
	result := Hand(0)
	for _, card := range cards {
		result = result.Append(card)
	}
	return result
}

// Len returns the number of cards in the Hand.
func (h Hand) Len() int {
	n := 0
	for ; h > 0; h >>= bitsPerCard {
		n++
	}
	return n
}

// NthCard returns the identity of the card selected in the Nth position.
func (h Hand) NthCard(n int) Card {
	assertWithinRange(n)
	shift := uint(n) * bitsPerCard
	return Card((h >> shift) & cardMask)
}

// Append returns a new Hand with the given card added after all others.
func (h Hand) Append(card Card) Hand {
	if !card.IsValid() {
		panic(fmt.Errorf("cannot append invalid card %v to hand", card))
	}

	n := h.Len()
	assertWithinRange(n)
	shift := uint(n) * bitsPerCard
	return h | Hand(card)<<shift
}

// AsSlice returns the Cards in the order they were selected.
func (h Hand) AsSlice() []Card {
	result := make([]Card, 0, h.Len())
	for ; h > 0; h >>= bitsPerCard {
		result = append(result, Card(h&cardMask))
	}
	return result
}

// AsSet returns the cards in the Hand as an unordered Set.
func (h Hand) AsSet() Set {
	return NewSetFromCards(h.AsSlice())
}

// HasTripleSumming returns whether any 3 distinct cards in the Hand
// sum to exactly goal.
func (h Hand) HasTripleSumming(goal int) bool {
	hand := h.AsSlice()
	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			for k := j + 1; k < len(hand); k++ {
				if int(hand[i])+int(hand[j])+int(hand[k]) == goal {
					return true
				}
			}
		}
	}

	return false
}

// String implements Stringer.
func (h Hand) String() string {
	result := make([]string, 0, h.Len())
	for _, card := range h.AsSlice() {
		result = append(result, card.String())
	}

	return "[" + strings.Join(result, ", ") + "]"
}
