package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dealPlayers int
	dealCards   int
)

// dealCmd shuffles a fresh deck and deals hands round-robin.
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Shuffle a fresh deck and deal hands",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		d, err := newStandardDeck(cfg)
		if err != nil {
			return err
		}
		d.Shuffle()
		hands, err := d.Deal(dealPlayers, dealCards)
		if err != nil {
			return err
		}
		colored := useColor(cfg)
		for i, hand := range hands {
			hand.Sort()
			fmt.Printf("Player %d: %s\n", i+1, renderCards(hand.Cards(), colored))
		}
		fmt.Printf("Remaining: %d cards\n", d.Len())
		return nil
	},
}

func init() {
	dealCmd.Flags().IntVar(&dealPlayers, "players", 4, "number of hands to deal")
	dealCmd.Flags().IntVar(&dealCards, "cards", 5, "cards per hand")
}
