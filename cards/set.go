package cards

import (
	"fmt"
	"strings"
)

// Set represents an unordered set of distinct cards.
//
// Bit i is set if Card i is in the Set. Since there are only 9 cards,
// the Set fits in a single uint16 and can be copied by value.
type Set uint16

func NewSet() Set {
	return Set(0)
}

// NewSetFromCards creates a new Set from the given slice of Cards.
func NewSetFromCards(cards []Card) Set {
	result := Set(0)
	for _, card := range cards {
		result.Add(card)
	}

	return result
}

// IsEmpty returns whether this Set contains any Cards.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Contains returns whether the given Card is in the Set.
func (s Set) Contains(card Card) bool {
	return card.IsValid() && s&bit(card) != 0
}

// Iter calls cb for each Card in the Set, in ascending order.
func (s Set) Iter(cb func(card Card)) {
	for card := MinCard; card <= MaxCard; card++ {
		if s&bit(card) != 0 {
			cb(card)
		}
	}
}

// Len gets the total number of Cards in the Set.
func (s Set) Len() int {
	n := 0
	s.Iter(func(card Card) {
		n++
	})
	return n
}

// AsSlice returns the Cards in the Set in ascending order.
func (s Set) AsSlice() []Card {
	result := make([]Card, 0, s.Len())
	s.Iter(func(card Card) {
		result = append(result, card)
	})
	return result
}

// Add includes the given Card in the Set.
// Add panics if the card is not a valid card.
func (s *Set) Add(card Card) {
	if !card.IsValid() {
		panic(fmt.Errorf("card %v out of range", card))
	}

	*s |= bit(card)
}

// Remove removes the given Card from the Set.
// Remove panics if the card is not present in the Set.
func (s *Set) Remove(card Card) {
	if !s.Contains(card) {
		panic(fmt.Errorf("card %v not in set %v", card, *s))
	}

	*s &^= bit(card)
}

// Union returns the Set of cards in either s or other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Intersection returns the Set of cards in both s and other.
func (s Set) Intersection(other Set) Set {
	return s & other
}

// String implements Stringer.
func (s Set) String() string {
	result := make([]string, 0, s.Len())
	s.Iter(func(card Card) {
		result = append(result, card.String())
	})

	return "{" + strings.Join(result, ", ") + "}"
}

func bit(card Card) Set {
	return Set(1) << card
}
