package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showCmd prints the canonical deck order without shuffling.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the deck in its canonical order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		d, err := newStandardDeck(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("%d cards\n", d.Len())
		fmt.Println(renderCards(d.Cards(), useColor(cfg)))
		return nil
	},
}
