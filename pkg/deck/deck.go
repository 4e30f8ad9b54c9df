// Package deck implements an ordered, mutable collection of playing
// cards with shuffling, cutting, dealing, and composition operations.
//
// Index 0 is the top of the deck. Every operation either completes or
// leaves the deck exactly as it was; no operation mutates on failure.
package deck

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/mpsalisbury/deck/pkg/cards"
	"golang.org/x/exp/slices"
)

// ErrInvalidArgument reports a malformed numeric argument, such as a
// deck count below one or a negative repeat factor.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIndexOutOfRange reports a position outside the deck.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrEmptyDeck reports a draw from a deck with no cards.
var ErrEmptyDeck = errors.New("empty deck")

// ErrInsufficientCards reports a request for more cards than the deck
// holds.
var ErrInsufficientCards = errors.New("insufficient cards")

// StandardSize is the number of cards in one standard deck.
const StandardSize = 52

// Deck is an ordered sequence of cards. Decks never share card storage:
// every composition or copy operation copies the sequence, so mutating
// one deck cannot affect another.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	cards cards.Cards
	rng   *rand.Rand
}

// Option configures a new deck.
type Option func(*Deck)

// WithRand sets the random source used by Shuffle. Inject a seeded
// source to make shuffles reproducible in tests.
func WithRand(r *rand.Rand) Option {
	return func(d *Deck) { d.rng = r }
}

// New returns an empty deck.
func New(opts ...Option) *Deck {
	d := &Deck{rng: rand.New(rand.NewSource(randomSeed()))}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewStandard returns deckCount concatenated copies of the canonical
// 52-card sequence: for each rank from Two up to Ace, one card per suit
// in the default suit order (♠ ♥ ♦ ♣). Reports ErrInvalidArgument if
// deckCount < 1.
func NewStandard(deckCount int, opts ...Option) (*Deck, error) {
	if deckCount < 1 {
		return nil, fmt.Errorf("deck count %d, need at least 1: %w", deckCount, ErrInvalidArgument)
	}
	d := New(opts...)
	d.cards = make(cards.Cards, 0, StandardSize*deckCount)
	for i := 0; i < deckCount; i++ {
		for _, r := range cards.Ranks {
			for _, s := range cards.Suits {
				d.cards = append(d.cards, cards.Card{Rank: r, Suit: s})
			}
		}
	}
	return d, nil
}

// Of returns a deck holding the given cards, top first.
func Of(cs ...cards.Card) *Deck {
	d := New()
	d.cards = append(d.cards, cs...)
	return d
}

func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether the deck has no cards.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// At returns the card at position i without removing it. Reports
// ErrIndexOutOfRange unless 0 <= i < Len.
func (d *Deck) At(i int) (cards.Card, error) {
	if i < 0 || i >= len(d.cards) {
		return cards.Card{}, fmt.Errorf("index %d with %d cards: %w", i, len(d.cards), ErrIndexOutOfRange)
	}
	return d.cards[i], nil
}

// Cards returns a copy of the deck's sequence, top first.
func (d *Deck) Cards() cards.Cards {
	return d.cards.Copy()
}

func (d *Deck) String() string {
	return d.cards.String()
}

// Shuffle reorders the deck into a uniformly random permutation using
// the deck's random source.
func (d *Deck) Shuffle() *Deck {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Cut cuts the deck at its midpoint, moving the bottom half on top.
func (d *Deck) Cut() *Deck {
	d.cut(len(d.cards) / 2)
	return d
}

// CutAt cuts the deck at position: cards from position down become the
// new top, followed by the cards above position. Reports
// ErrIndexOutOfRange unless 0 <= position <= Len.
func (d *Deck) CutAt(position int) error {
	if position < 0 || position > len(d.cards) {
		return fmt.Errorf("cut position %d with %d cards: %w", position, len(d.cards), ErrIndexOutOfRange)
	}
	d.cut(position)
	return nil
}

func (d *Deck) cut(position int) {
	rotated := make(cards.Cards, 0, len(d.cards))
	rotated = append(rotated, d.cards[position:]...)
	rotated = append(rotated, d.cards[:position]...)
	d.cards = rotated
}

// Reverse reverses the order of the deck in place.
func (d *Deck) Reverse() *Deck {
	for i, j := 0, len(d.cards)-1; i < j; i, j = i+1, j-1 {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// Sort orders the deck ascending by rank, then suit, using the default
// orders. On a full standard deck this reproduces the canonical
// NewStandard sequence.
func (d *Deck) Sort() *Deck {
	// Defaults cover every value, so this cannot fail.
	_ = d.SortBy(nil, nil)
	return d
}

// SortBy orders the deck ascending by rank then suit using the given
// custom orders; a nil order means the default for that key. Reports
// ErrUnknownValue, leaving the deck unchanged, if any card's rank or
// suit is absent from a supplied order.
func (d *Deck) SortBy(ranks []cards.Rank, suits []cards.Suit) error {
	if ranks == nil {
		ranks = cards.Ranks
	}
	if suits == nil {
		suits = cards.Suits
	}
	rankIndex := make(map[cards.Rank]int, len(ranks))
	for i, r := range ranks {
		rankIndex[r] = i
	}
	suitIndex := make(map[cards.Suit]int, len(suits))
	for i, s := range suits {
		suitIndex[s] = i
	}
	for _, c := range d.cards {
		if _, ok := rankIndex[c.Rank]; !ok {
			return fmt.Errorf("rank %s: %w", c.Rank, cards.ErrUnknownValue)
		}
		if _, ok := suitIndex[c.Suit]; !ok {
			return fmt.Errorf("suit %s: %w", c.Suit, cards.ErrUnknownValue)
		}
	}
	sort.SliceStable(d.cards, func(i, j int) bool {
		a, b := d.cards[i], d.cards[j]
		if rankIndex[a.Rank] != rankIndex[b.Rank] {
			return rankIndex[a.Rank] < rankIndex[b.Rank]
		}
		return suitIndex[a.Suit] < suitIndex[b.Suit]
	})
	return nil
}

// Draw removes and returns the top card. Reports ErrEmptyDeck if the
// deck has no cards.
func (d *Deck) Draw() (cards.Card, error) {
	if len(d.cards) == 0 {
		return cards.Card{}, fmt.Errorf("draw: %w", ErrEmptyDeck)
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// DrawN removes and returns the top n cards, top first. All or
// nothing: if n exceeds the deck size it reports ErrInsufficientCards
// and removes nothing.
func (d *Deck) DrawN(n int) (cards.Cards, error) {
	if n < 0 {
		return nil, fmt.Errorf("draw count %d: %w", n, ErrInvalidArgument)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("draw %d of %d cards: %w", n, len(d.cards), ErrInsufficientCards)
	}
	drawn := d.cards[:n].Copy()
	d.cards = d.cards[n:]
	return drawn, nil
}

// Deal removes players*count cards from the top and distributes them
// round-robin: one card to each player in turn, count times. Hand i
// receives the cards at positions i, players+i, 2*players+i, and so on.
// Reports ErrInvalidArgument if players or count is below one, and
// ErrInsufficientCards, touching nothing, if the deck is too small.
func (d *Deck) Deal(players, count int) ([]*Deck, error) {
	if players < 1 {
		return nil, fmt.Errorf("players %d, need at least 1: %w", players, ErrInvalidArgument)
	}
	if count < 1 {
		return nil, fmt.Errorf("cards per player %d, need at least 1: %w", count, ErrInvalidArgument)
	}
	if players*count > len(d.cards) {
		return nil, fmt.Errorf("deal %d cards to %d players from %d cards: %w",
			count, players, len(d.cards), ErrInsufficientCards)
	}
	hands := make([]*Deck, players)
	for i := range hands {
		hands[i] = New()
	}
	for j := 0; j < count; j++ {
		for _, hand := range hands {
			c, _ := d.Draw()
			hand.cards = append(hand.cards, c)
		}
	}
	return hands, nil
}

// Peek returns the top card without removing it. Reports ErrEmptyDeck
// if the deck has no cards.
func (d *Deck) Peek() (cards.Card, error) {
	if len(d.cards) == 0 {
		return cards.Card{}, fmt.Errorf("peek: %w", ErrEmptyDeck)
	}
	return d.cards[0], nil
}

// PeekN returns the top n cards, top first, without removing them.
// Reports ErrInsufficientCards if n exceeds the deck size.
func (d *Deck) PeekN(n int) (cards.Cards, error) {
	if n < 0 {
		return nil, fmt.Errorf("peek count %d: %w", n, ErrInvalidArgument)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("peek %d of %d cards: %w", n, len(d.cards), ErrInsufficientCards)
	}
	return d.cards[:n].Copy(), nil
}

// Count returns the number of cards in the deck equal to c.
func (d *Deck) Count(c cards.Card) int {
	return d.cards.CountCard(c)
}

// Contains reports whether the deck holds a card equal to c.
func (d *Deck) Contains(c cards.Card) bool {
	return d.cards.ContainsCard(c)
}

// Index returns the position of the first card equal to c, or -1.
func (d *Deck) Index(c cards.Card) int {
	return slices.Index(d.cards, c)
}

// Concat returns a new deck holding d's cards followed by other's.
// Neither input is modified and the result shares no storage with
// either.
func (d *Deck) Concat(other *Deck) *Deck {
	combined := New()
	combined.cards = make(cards.Cards, 0, len(d.cards)+len(other.cards))
	combined.cards = append(combined.cards, d.cards...)
	combined.cards = append(combined.cards, other.cards...)
	return combined
}

// Extend appends a copy of other's cards to the bottom of d.
func (d *Deck) Extend(other *Deck) *Deck {
	d.cards = append(d.cards, other.cards...)
	return d
}

// Repeat replaces the deck's sequence with k concatenated copies of
// itself; k of zero empties the deck. Reports ErrInvalidArgument if
// k < 0.
func (d *Deck) Repeat(k int) error {
	if k < 0 {
		return fmt.Errorf("repeat count %d: %w", k, ErrInvalidArgument)
	}
	repeated := make(cards.Cards, 0, len(d.cards)*k)
	for i := 0; i < k; i++ {
		repeated = append(repeated, d.cards...)
	}
	d.cards = repeated
	return nil
}

// Append adds a card to the bottom of the deck.
func (d *Deck) Append(c cards.Card) *Deck {
	d.cards = append(d.cards, c)
	return d
}

// Insert places a card at position i, shifting later cards down.
// Position Len appends. Reports ErrIndexOutOfRange unless
// 0 <= i <= Len.
func (d *Deck) Insert(i int, c cards.Card) error {
	if i < 0 || i > len(d.cards) {
		return fmt.Errorf("insert at %d with %d cards: %w", i, len(d.cards), ErrIndexOutOfRange)
	}
	d.cards = slices.Insert(d.cards, i, c)
	return nil
}

// RemoveCard removes the first card equal to c, reporting whether a
// card was removed.
func (d *Deck) RemoveCard(c cards.Card) bool {
	for i, f := range d.cards {
		if f == c {
			copy(d.cards[i:], d.cards[i+1:])
			d.cards = d.cards[:len(d.cards)-1]
			return true
		}
	}
	return false
}

// Clear removes all cards.
func (d *Deck) Clear() *Deck {
	d.cards = nil
	return d
}

// Copy returns a new deck with the same sequence and an independent
// random source.
func (d *Deck) Copy() *Deck {
	dup := New()
	dup.cards = d.cards.Copy()
	return dup
}
