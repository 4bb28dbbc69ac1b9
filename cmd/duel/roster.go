package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/roster"
)

var flagRosterExport bool

var rosterCmd = &cobra.Command{
	Use:   "roster [fighter]",
	Short: "List fighters or show one fighter's details",
	Long: `Without arguments, shows all fighters in the roster. With a fighter
ID, shows that fighter's stats and full move list.

Examples:
  duel roster
  duel roster kenzo
  duel roster --export > my-roster.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRoster,
}

func init() {
	rosterCmd.Flags().BoolVar(&flagRosterExport, "export", false, "Print the default roster YAML and exit")
}

func runRoster(cmd *cobra.Command, args []string) {
	if flagRosterExport {
		fmt.Print(string(roster.DefaultYAML()))
		return
	}

	if len(args) == 1 {
		showFighter(args[0])
		return
	}

	fighters, err := roster.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading roster: %v\n", err)
		os.Exit(1)
	}

	if len(fighters) == 0 {
		fmt.Println("No fighters available.")
		return
	}

	fmt.Println("Available fighters:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4
	for _, f := range fighters {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
		if len(f.Name) > maxNameLen {
			maxNameLen = len(f.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-18s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Style", "Weapon")
	fmt.Printf("  %-*s  %-*s  %-18s  %s\n", maxIDLen, "--", maxNameLen, "----", "-----", "------")

	// Print fighters
	for _, f := range fighters {
		fmt.Printf("  %-*s  %-*s  %-18s  %s\n", maxIDLen, f.ID, maxNameLen, f.Name, f.Style, f.Weapon)
	}

	fmt.Println()
	fmt.Println("Run 'duel play <id> <id>' to start a match.")
}

func showFighter(id string) {
	f, err := roster.Lookup(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	w, err := roster.LookupWeapon(f.WeaponID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s)\n", f.Name, f.Style)
	fmt.Println()
	fmt.Printf("  Health   %.0f    Stamina  %.0f    Defense  %.2f\n", f.MaxHealth, f.MaxStamina, f.Defense)
	fmt.Printf("  Speed    %.1f   Dash     %.1f (%d frames)\n", f.MoveSpeed, f.DashSpeed, f.DashFrames)
	fmt.Printf("  Weapon   %s (%.0f dmg, %.1fx speed)\n", w.Name, w.BaseDamage, w.AttackSpeed)
	fmt.Println()

	fmt.Printf("  %-9s  %-18s  %-6s  %-13s  %s\n", "Slot", "Move", "Dmg", "Frames", "Knockback")
	fmt.Printf("  %-9s  %-18s  %-6s  %-13s  %s\n", "----", "----", "---", "------", "---------")

	moves := []struct {
		slot string
		m    *roster.Move
	}{
		{"light", &f.Moves.Light},
		{"heavy", &f.Moves.Heavy},
		{"special", &f.Moves.Special},
		{"mid kick", &f.Moves.MidKick},
		{"low kick", &f.Moves.LowKick},
		{"aerial", &f.Moves.Aerial},
		{"finisher", &f.Moves.ComboFinisher},
		{"super", &f.Moves.Super},
	}
	for _, row := range moves {
		launch := ""
		if row.m.Launches {
			launch = " (launch)"
		}
		frames := fmt.Sprintf("%d/%d/%d", row.m.Startup, row.m.Active, row.m.Recovery)
		fmt.Printf("  %-9s  %-18s  %-6.1f  %-13s  %.1f%s\n",
			row.slot, row.m.Name, w.BaseDamage*row.m.DamageMultiplier, frames, row.m.Knockback, launch)
	}
}
