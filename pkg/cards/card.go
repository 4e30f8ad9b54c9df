// Package cards models playing cards: ranks, suits, colors, and the
// immutable Card value that decks are built from.
package cards

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrInvalidToken reports a rank or suit token that matches no known alias.
var ErrInvalidToken = errors.New("invalid token")

// ErrUnknownValue reports a rank or suit missing from a caller-supplied
// custom ordering.
var ErrUnknownValue = errors.New("value not in ordering")

// A card's suit.
type Suit int8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits is the default suit order, lowest first.
var Suits = []Suit{
	Spades,
	Hearts,
	Diamonds,
	Clubs,
}

// String returns the unicode symbol for the suit.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	panic("unknown Suit")
}

// Name returns the full uppercase name of the suit.
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "SPADES"
	case Hearts:
		return "HEARTS"
	case Diamonds:
		return "DIAMONDS"
	case Clubs:
		return "CLUBS"
	}
	panic("unknown Suit")
}

// Letter returns the single-letter form of the suit.
func (s Suit) Letter() string {
	return s.Name()[:1]
}

// Color returns the color of the suit: spades and clubs are black,
// hearts and diamonds are red.
func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	}
	return Black
}

// ParseSuit parses a suit from its symbol ("♠"), letter ("s"), or
// name ("spades"). Letters and names are case-insensitive.
func ParseSuit(token string) (Suit, error) {
	switch strings.ToUpper(token) {
	case "♠", "S", "SPADES":
		return Spades, nil
	case "♥", "H", "HEARTS":
		return Hearts, nil
	case "♦", "D", "DIAMONDS":
		return Diamonds, nil
	case "♣", "C", "CLUBS":
		return Clubs, nil
	}
	return Spades, fmt.Errorf("no such suit %q: %w", token, ErrInvalidToken)
}

// A card's color, derived from its suit.
type Color int8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	switch c {
	case Black:
		return "BLACK"
	case Red:
		return "RED"
	}
	panic("unknown Color")
}

// A card's rank: 2-10, J, Q, K, A.
type Rank int8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks is the default rank order, lowest first.
var Ranks = []Rank{
	Two,
	Three,
	Four,
	Five,
	Six,
	Seven,
	Eight,
	Nine,
	Ten,
	Jack,
	Queen,
	King,
	Ace,
}

// String returns the short alias for the rank ("2".."10", "J", "Q", "K", "A").
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	panic("unknown Rank")
}

// Name returns the full uppercase name of the rank.
func (r Rank) Name() string {
	switch r {
	case Two:
		return "TWO"
	case Three:
		return "THREE"
	case Four:
		return "FOUR"
	case Five:
		return "FIVE"
	case Six:
		return "SIX"
	case Seven:
		return "SEVEN"
	case Eight:
		return "EIGHT"
	case Nine:
		return "NINE"
	case Ten:
		return "TEN"
	case Jack:
		return "JACK"
	case Queen:
		return "QUEEN"
	case King:
		return "KING"
	case Ace:
		return "ACE"
	}
	panic("unknown Rank")
}

// ParseRank parses a rank from a short alias ("10", "t", "a") or full
// name ("ten", "ace"), case-insensitively.
func ParseRank(token string) (Rank, error) {
	switch strings.ToUpper(token) {
	case "2", "TWO":
		return Two, nil
	case "3", "THREE":
		return Three, nil
	case "4", "FOUR":
		return Four, nil
	case "5", "FIVE":
		return Five, nil
	case "6", "SIX":
		return Six, nil
	case "7", "SEVEN":
		return Seven, nil
	case "8", "EIGHT":
		return Eight, nil
	case "9", "NINE":
		return Nine, nil
	case "10", "T", "TEN":
		return Ten, nil
	case "J", "JACK":
		return Jack, nil
	case "Q", "QUEEN":
		return Queen, nil
	case "K", "KING":
		return King, nil
	case "A", "ACE":
		return Ace, nil
	}
	return Two, fmt.Errorf("no such rank %q: %w", token, ErrInvalidToken)
}

// CompareRank compares a and b by their positions in order, returning
// -1, 0, or 1. A rank absent from order is a malformed ordering and
// reports ErrUnknownValue.
func CompareRank(a, b Rank, order []Rank) (int, error) {
	ai := slices.Index(order, a)
	if ai < 0 {
		return 0, fmt.Errorf("rank %s: %w", a, ErrUnknownValue)
	}
	bi := slices.Index(order, b)
	if bi < 0 {
		return 0, fmt.Errorf("rank %s: %w", b, ErrUnknownValue)
	}
	return compareIndex(ai, bi), nil
}

// CompareSuit compares a and b by their positions in order, returning
// -1, 0, or 1. A suit absent from order reports ErrUnknownValue.
func CompareSuit(a, b Suit, order []Suit) (int, error) {
	ai := slices.Index(order, a)
	if ai < 0 {
		return 0, fmt.Errorf("suit %s: %w", a, ErrUnknownValue)
	}
	bi := slices.Index(order, b)
	if bi < 0 {
		return 0, fmt.Errorf("suit %s: %w", b, ErrUnknownValue)
	}
	return compareIndex(ai, bi), nil
}

func compareIndex(ai, bi int) int {
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	}
	return 0
}

// Card is an immutable (rank, suit) pair. Two cards are equal iff both
// fields are equal, so Card works with == and as a map key.
type Card struct {
	Rank
	Suit
}

// New builds a card from typed rank and suit values.
func New(r Rank, s Suit) Card {
	return Card{r, s}
}

// Parse builds a card from rank and suit tokens, accepting any alias
// that ParseRank and ParseSuit accept.
func Parse(rankToken, suitToken string) (Card, error) {
	r, err := ParseRank(rankToken)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suitToken)
	if err != nil {
		return Card{}, err
	}
	return Card{r, s}, nil
}

// Format selects how a card renders.
type Format int8

const (
	// FormatFull renders the long form, e.g. "ACE of SPADES ♠".
	FormatFull Format = iota
	// FormatRank renders the short rank alias, e.g. "A".
	FormatRank
	// FormatSuit renders the suit symbol, e.g. "♠".
	FormatSuit
)

// Format renders the card per the given option.
func (c Card) Format(f Format) string {
	switch f {
	case FormatRank:
		return c.Rank.String()
	case FormatSuit:
		return c.Suit.String()
	}
	return fmt.Sprintf("%s of %s %s", c.Rank.Name(), c.Suit.Name(), c.Suit)
}

func (c Card) String() string {
	return c.Format(FormatFull)
}

// Less reports whether c sorts before other under the default orders:
// rank first, then suit.
func (c Card) Less(other Card) bool {
	if c.Rank == other.Rank {
		return c.Suit < other.Suit
	}
	return c.Rank < other.Rank
}
