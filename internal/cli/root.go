// Package cli implements the deckcli command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "deckcli",
	Short: "Shuffle, cut, and deal playing-card decks",
	Long: `Deckcli builds standard 52-card decks (or several at once), shuffles,
cuts, draws, and deals them from the command line. Defaults such as the
number of decks and the shuffle seed come from the deckcli config file
and can be overridden per run with flags.`,
}

var (
	deckCountFlag int
	seedFlag      int64
	noColorFlag   bool
)

func init() {
	RootCmd.PersistentFlags().IntVar(&deckCountFlag, "decks", 0, "number of 52-card sets to use (0 = config default)")
	RootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "shuffle seed (0 = config default, then random)")
	RootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable red/black suit coloring")
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(shuffleCmd)
	RootCmd.AddCommand(dealCmd)
	RootCmd.AddCommand(drawCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
