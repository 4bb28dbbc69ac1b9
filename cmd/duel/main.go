// duel is a terminal fighting game for two players on one keyboard.
//
// Usage:
//
//	duel roster              - List available fighters
//	duel roster <fighter>    - Show a fighter's stats and moves
//	duel play [p1] [p2]      - Start a match (fighter select if omitted)
//	duel serve               - Start SSH server for remote play
//	duel results             - Show recent match results
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--db <path>      - Set database path (default: ~/.duel/matches.db)
//	--roster <path>  - Use a custom roster YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/roster"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagRosterPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Duel - A terminal fighting game for two players",
	Long: `Duel is a terminal-based fighting game where two players share one
keyboard. Pick a fighter, win two rounds, take the match.

Available commands:
  roster   - Show all available fighters
  play     - Start a match
  serve    - Start SSH server for remote play
  results  - View recent match results

Examples:
  duel roster
  duel play kenzo mira
  duel play
  duel serve --ssh :2222
  duel results --limit 20`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		roster.SetConfigPath(flagRosterPath)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duel/matches.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagRosterPath, "roster", "", "Path to custom roster YAML")

	// Add subcommands
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
}
