package cards

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Cards is an ordered sequence of Card values.
type Cards []Card

// Copy returns a new slice with the same cards.
func (cs Cards) Copy() Cards {
	cardsCopy := make(Cards, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

// Contains reports whether any card matches.
func (cs Cards) Contains(match func(Card) bool) bool {
	for _, c := range cs {
		if match(c) {
			return true
		}
	}
	return false
}

// ContainsCard reports whether the sequence holds a card equal to c.
func (cs Cards) ContainsCard(c Card) bool {
	return slices.Contains(cs, c)
}

// Count returns the number of cards matching.
func (cs Cards) Count(match func(Card) bool) int {
	count := 0
	for _, c := range cs {
		if match(c) {
			count++
		}
	}
	return count
}

// CountCard returns the number of cards equal to c.
func (cs Cards) CountCard(c Card) int {
	return cs.Count(func(oc Card) bool { return oc == c })
}

// Equals reports whether both sequences hold the same cards in the
// same order.
func (cs Cards) Equals(other Cards) bool {
	return slices.Equal(cs, other)
}

// Strings returns the compact form of each card, e.g. "A♠".
func (cs Cards) Strings() []string {
	cardStrings := make([]string, 0, len(cs))
	for _, c := range cs {
		cardStrings = append(cardStrings, c.Rank.String()+c.Suit.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	return strings.Join(cs.Strings(), " ")
}
