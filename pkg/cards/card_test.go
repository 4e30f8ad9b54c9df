package cards

import (
	"errors"
	"testing"
)

func TestParseRank(t *testing.T) {
	tests := []struct {
		token string
		want  Rank
	}{
		{"2", Two},
		{"3", Three},
		{"4", Four},
		{"5", Five},
		{"6", Six},
		{"7", Seven},
		{"8", Eight},
		{"9", Nine},
		{"10", Ten},
		{"T", Ten},
		{"t", Ten},
		{"J", Jack},
		{"jack", Jack},
		{"Q", Queen},
		{"queen", Queen},
		{"k", King},
		{"KING", King},
		{"A", Ace},
		{"a", Ace},
		{"Ace", Ace},
		{"two", Two},
		{"TEN", Ten},
	}
	for _, tc := range tests {
		got, err := ParseRank(tc.token)
		if err != nil {
			t.Errorf("ParseRank(%q)=error(%s), want %s", tc.token, err, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRank(%q)=%s, want %s", tc.token, got, tc.want)
		}
	}
}

func TestParseRankInvalid(t *testing.T) {
	tests := []string{"", "1", "11", "x", "jok", "ace of spades"}
	for _, tc := range tests {
		got, err := ParseRank(tc)
		if err == nil {
			t.Errorf("ParseRank(%q)=%s, want err", tc, got)
			continue
		}
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ParseRank(%q) err=%v, want ErrInvalidToken", tc, err)
		}
	}
}

func TestParseSuit(t *testing.T) {
	tests := []struct {
		token string
		want  Suit
	}{
		{"♠", Spades},
		{"S", Spades},
		{"s", Spades},
		{"spades", Spades},
		{"SPADES", Spades},
		{"♥", Hearts},
		{"h", Hearts},
		{"Hearts", Hearts},
		{"♦", Diamonds},
		{"D", Diamonds},
		{"diamonds", Diamonds},
		{"♣", Clubs},
		{"c", Clubs},
		{"CLUBS", Clubs},
	}
	for _, tc := range tests {
		got, err := ParseSuit(tc.token)
		if err != nil {
			t.Errorf("ParseSuit(%q)=error(%s), want %s", tc.token, err, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSuit(%q)=%s, want %s", tc.token, got, tc.want)
		}
	}
}

func TestParseSuitInvalid(t *testing.T) {
	tests := []string{"", "x", "♤", "spade s", "hearts♥"}
	for _, tc := range tests {
		got, err := ParseSuit(tc)
		if err == nil {
			t.Errorf("ParseSuit(%q)=%s, want err", tc, got)
			continue
		}
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ParseSuit(%q) err=%v, want ErrInvalidToken", tc, err)
		}
	}
}

func TestRankRoundTrip(t *testing.T) {
	for _, r := range Ranks {
		for _, token := range []string{r.String(), r.Name()} {
			got, err := ParseRank(token)
			if err != nil {
				t.Errorf("ParseRank(%q)=error(%s), want %s", token, err, r)
				continue
			}
			if got != r {
				t.Errorf("ParseRank(%q)=%s, want %s", token, got, r)
			}
		}
	}
}

func TestSuitRoundTrip(t *testing.T) {
	for _, s := range Suits {
		for _, token := range []string{s.String(), s.Letter(), s.Name()} {
			got, err := ParseSuit(token)
			if err != nil {
				t.Errorf("ParseSuit(%q)=error(%s), want %s", token, err, s)
				continue
			}
			if got != s {
				t.Errorf("ParseSuit(%q)=%s, want %s", token, got, s)
			}
		}
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		rank string
		suit string
		want Card
	}{
		{"A", "♠", Cas},
		{"ace", "spades", Cas},
		{"10", "h", Cth},
		{"t", "HEARTS", Cth},
		{"2", "♣", C2c},
		{"queen", "D", Cqd},
	}
	for _, tc := range tests {
		got, err := Parse(tc.rank, tc.suit)
		if err != nil {
			t.Errorf("Parse(%q, %q)=error(%s), want %s", tc.rank, tc.suit, err, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q, %q)=%s, want %s", tc.rank, tc.suit, got, tc.want)
		}
	}
	if _, err := Parse("x", "♠"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse(x, ♠) err=%v, want ErrInvalidToken", err)
	}
	if _, err := Parse("A", "x"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse(A, x) err=%v, want ErrInvalidToken", err)
	}
}

func TestCardEquality(t *testing.T) {
	fromAlias, err := Parse("ace", "s")
	if err != nil {
		t.Fatalf("Parse(ace, s)=error(%s)", err)
	}
	if fromAlias != New(Ace, Spades) {
		t.Errorf("Parse(ace, s)=%s != New(Ace, Spades)", fromAlias)
	}
	if Cas == Cah {
		t.Errorf("Cas == Cah, want distinct")
	}
}

func TestCardFormat(t *testing.T) {
	tests := []struct {
		card Card
		f    Format
		want string
	}{
		{Cas, FormatFull, "ACE of SPADES ♠"},
		{Cas, FormatRank, "A"},
		{Cas, FormatSuit, "♠"},
		{Cth, FormatFull, "TEN of HEARTS ♥"},
		{Cth, FormatRank, "10"},
		{C2c, FormatFull, "TWO of CLUBS ♣"},
		{Cqd, FormatSuit, "♦"},
	}
	for _, tc := range tests {
		if got := tc.card.Format(tc.f); got != tc.want {
			t.Errorf("Format(%v)=%q, want %q", tc.f, got, tc.want)
		}
	}
	if got := Cas.String(); got != "ACE of SPADES ♠" {
		t.Errorf("String()=%q, want full format", got)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		suit Suit
		want Color
	}{
		{Spades, Black},
		{Clubs, Black},
		{Hearts, Red},
		{Diamonds, Red},
	}
	for _, tc := range tests {
		if got := tc.suit.Color(); got != tc.want {
			t.Errorf("%s.Color()=%s, want %s", tc.suit.Name(), got, tc.want)
		}
	}
}

func TestCardLess(t *testing.T) {
	tests := []struct {
		a, b Card
		want bool
	}{
		{C2s, C3s, true},
		{C3s, C2s, false},
		{Cks, Cas, true},
		{C2s, C2h, true}, // same rank, suit breaks the tie
		{C2c, C2s, false},
		{Cas, Cas, false},
		{Cth, Cjc, true}, // rank dominates suit
	}
	for _, tc := range tests {
		if got := tc.a.Less(tc.b); got != tc.want {
			t.Errorf("%s.Less(%s)=%v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCompareRank(t *testing.T) {
	// Ace-low ordering.
	order := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
	tests := []struct {
		a, b Rank
		want int
	}{
		{Ace, Two, -1},
		{Two, Ace, 1},
		{King, King, 0},
		{Ten, Jack, -1},
	}
	for _, tc := range tests {
		got, err := CompareRank(tc.a, tc.b, order)
		if err != nil {
			t.Errorf("CompareRank(%s, %s)=error(%s)", tc.a, tc.b, err)
			continue
		}
		if got != tc.want {
			t.Errorf("CompareRank(%s, %s)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCompareRankUnknown(t *testing.T) {
	order := []Rank{Two, Three}
	if _, err := CompareRank(Ace, Two, order); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("CompareRank(Ace, Two) err=%v, want ErrUnknownValue", err)
	}
	if _, err := CompareRank(Two, Ace, order); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("CompareRank(Two, Ace) err=%v, want ErrUnknownValue", err)
	}
}

func TestCompareSuit(t *testing.T) {
	got, err := CompareSuit(Hearts, Spades, Suits)
	if err != nil {
		t.Fatalf("CompareSuit(Hearts, Spades)=error(%s)", err)
	}
	if got != 1 {
		t.Errorf("CompareSuit(Hearts, Spades)=%d, want 1", got)
	}
	if _, err := CompareSuit(Clubs, Spades, []Suit{Spades, Hearts}); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("CompareSuit err=%v, want ErrUnknownValue", err)
	}
}

func TestRankDomains(t *testing.T) {
	if len(Ranks) != 13 {
		t.Errorf("len(Ranks)=%d, want 13", len(Ranks))
	}
	if len(Suits) != 4 {
		t.Errorf("len(Suits)=%d, want 4", len(Suits))
	}
}
