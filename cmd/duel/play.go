package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/roster"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [p1] [p2]",
	Short: "Start a match",
	Long: `Start a local two-player match. Pass two fighter IDs to skip the
fighter select screen.

Controls:
  Player 1: WASD move, J/K/L light/heavy/special, U/I/O kicks and aerial,
            Space block, Tab dash
  Player 2: Arrows move, ,/. and / light/heavy/special, M/N/B kicks and
            aerial, 0 block, 9 dash
  Q/Ctrl+C  quit

Examples:
  duel play
  duel play kenzo mira
  duel play thane drago --fps 30`,
	Args: cobra.MaximumNArgs(2),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		fmt.Fprintln(os.Stderr, "Error: pass two fighter IDs or none")
		os.Exit(1)
	}

	var p1ID, p2ID string
	if len(args) == 2 {
		p1ID, p2ID = args[0], args[1]
		for _, id := range args {
			if !roster.Exists(id) {
				fmt.Fprintf(os.Stderr, "Error: unknown fighter %q\n", id)
				fmt.Fprintln(os.Stderr, "Run 'duel roster' to see available fighters.")
				os.Exit(1)
			}
		}
	}

	// The HUD and arena strip need some horizontal room.
	if width, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && width < 70 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %d columns wide, 70+ recommended\n", width)
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	model, err := tui.NewModel(tui.ModelConfig{
		P1Fighter: p1ID,
		P2Fighter: p2ID,
		TickRate:  flagFPS,
		Store:     store,
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := model.Run()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
