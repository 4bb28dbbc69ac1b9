package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

var (
	flagResultsLimit int
	flagResultsTUI   bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recent match results",
	Long: `Display recently finished matches and per-fighter win records.

Examples:
  duel results
  duel results --limit 20
  duel results --tui`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "How many matches to show")
	resultsCmd.Flags().BoolVar(&flagResultsTUI, "tui", false, "Browse history in an interactive table")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResultsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	matches, err := store.RecentMatches(flagResultsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'duel play' to record the first one!")
		return
	}

	fmt.Println("Recent matches:")
	fmt.Println()
	fmt.Printf("  %-12s  %-12s  %-7s  %-10s  %s\n", "P1", "P2", "Score", "Winner", "Date")
	fmt.Printf("  %-12s  %-12s  %-7s  %-10s  %s\n", "--", "--", "-----", "------", "----")

	for _, m := range matches {
		score := fmt.Sprintf("%d-%d", m.P1Rounds, m.P2Rounds)
		dateStr := m.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-12s  %-12s  %-7s  %-10s  %s\n",
			m.P1Fighter, m.P2Fighter, score, m.WinnerFighter, dateStr)
	}

	records, err := store.FighterRecords()
	if err != nil || len(records) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Fighter records:")
	fmt.Println()
	fmt.Printf("  %-12s  %-5s  %s\n", "Fighter", "Wins", "Matches")
	fmt.Printf("  %-12s  %-5s  %s\n", "-------", "----", "-------")
	for _, r := range records {
		fmt.Printf("  %-12s  %-5d  %d\n", r.FighterID, r.Wins, r.Matches)
	}
}
