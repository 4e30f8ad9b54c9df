package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpsalisbury/deck/pkg/cards"
)

var drawCount int

// drawCmd shuffles a fresh deck and draws from the top.
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Shuffle a fresh deck and draw cards from the top",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		d, err := newStandardDeck(cfg)
		if err != nil {
			return err
		}
		d.Shuffle()
		drawn, err := d.DrawN(drawCount)
		if err != nil {
			return err
		}
		for _, c := range drawn {
			fmt.Println(c.Format(cards.FormatFull))
		}
		return nil
	},
}

func init() {
	drawCmd.Flags().IntVar(&drawCount, "count", 1, "number of cards to draw")
}
