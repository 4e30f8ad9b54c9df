package cli

import (
	"math/rand"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mpsalisbury/deck/internal/config"
	"github.com/mpsalisbury/deck/pkg/cards"
	"github.com/mpsalisbury/deck/pkg/deck"
)

// loadConfig falls back to built-in defaults when the config file is
// unreadable; a broken config should not stop a deal.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.Default()
	}
	return cfg
}

// newStandardDeck builds the starting deck from config and flags.
// Flags win over config when set.
func newStandardDeck(cfg *config.Config) (*deck.Deck, error) {
	deckCount := cfg.DeckCount
	if deckCountFlag > 0 {
		deckCount = deckCountFlag
	}
	seed := cfg.Seed
	if seedFlag != 0 {
		seed = seedFlag
	}
	var opts []deck.Option
	if seed != 0 {
		opts = append(opts, deck.WithRand(rand.New(rand.NewSource(seed))))
	}
	return deck.NewStandard(deckCount, opts...)
}

func useColor(cfg *config.Config) bool {
	return cfg.Color && !noColorFlag
}

var redSuit = color.New(color.FgRed)

// cardToken renders a card compactly ("A♠"), coloring red suits when
// colored is set.
func cardToken(c cards.Card, colored bool) string {
	token := c.Format(cards.FormatRank) + c.Format(cards.FormatSuit)
	if colored && c.Color() == cards.Red {
		return redSuit.Sprint(token)
	}
	return token
}

// terminalWidth returns the stdout width, or 80 when stdout is not a
// terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// renderCards lays the cards out in lines wrapped to the terminal
// width.
func renderCards(cs cards.Cards, colored bool) string {
	width := terminalWidth()
	var b strings.Builder
	lineWidth := 0
	for _, c := range cs {
		// Display width, not byte length: suit symbols are multi-byte.
		tokenWidth := utf8.RuneCountInString(c.Format(cards.FormatRank)) + 1
		if lineWidth > 0 && lineWidth+1+tokenWidth > width {
			b.WriteString("\n")
			lineWidth = 0
		} else if lineWidth > 0 {
			b.WriteString(" ")
			lineWidth++
		}
		b.WriteString(cardToken(c, colored))
		lineWidth += tokenWidth
	}
	return b.String()
}
