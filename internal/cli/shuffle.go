package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	shuffleCutAt int
	shuffleTop   int
)

// shuffleCmd shuffles a fresh deck, optionally cuts it, and prints it.
var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle a fresh deck and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		d, err := newStandardDeck(cfg)
		if err != nil {
			return err
		}
		d.Shuffle()
		if shuffleCutAt >= 0 {
			if err := d.CutAt(shuffleCutAt); err != nil {
				return err
			}
		}
		cs := d.Cards()
		if shuffleTop > 0 {
			if cs, err = d.PeekN(shuffleTop); err != nil {
				return err
			}
		}
		fmt.Println(renderCards(cs, useColor(cfg)))
		return nil
	},
}

func init() {
	shuffleCmd.Flags().IntVar(&shuffleCutAt, "cut", -1, "cut the deck at this position after shuffling (-1 = no cut)")
	shuffleCmd.Flags().IntVar(&shuffleTop, "top", 0, "print only the top N cards (0 = all)")
}
