package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/sim"
)

// arenaCols is the number of terminal columns the arena strip occupies.
const arenaCols = 61

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	p1Style       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	p2Style       = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hitStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	groundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	announceStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// View renders the current session state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.game.Phase == sim.PhaseSelect {
		return m.renderSelect()
	}
	return m.renderFight()
}

// renderSelect draws the fighter select screen.
func (m Model) renderSelect() string {
	var sb strings.Builder

	sb.WriteString(center(titleStyle.Render("CHOOSE YOUR FIGHTER"), arenaCols))
	sb.WriteString("\n\n")

	for i, info := range m.catalog {
		p1Mark := "   "
		if m.cursor[0] == i {
			p1Mark = p1Style.Render("P1>")
		}
		p2Mark := "   "
		if m.cursor[1] == i {
			p2Mark = p2Style.Render("<P2")
		}

		entry := fmt.Sprintf("%-10s %-18s %s", info.Name, info.Style, info.Weapon)
		sb.WriteString(fmt.Sprintf(" %s %-44s %s\n", p1Mark, entry, p2Mark))
	}

	sb.WriteString("\n")
	ready := func(locked bool) string {
		if locked {
			return "READY"
		}
		return "picking..."
	}
	sb.WriteString(fmt.Sprintf(" %s  |  %s\n",
		p1Style.Render("P1: "+ready(m.locked[0])),
		p2Style.Render("P2: "+ready(m.locked[1]))))

	if m.selectErr != nil {
		sb.WriteString(hitStyle.Render(" " + m.selectErr.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(" P1: w/s move, j confirm   P2: up/down move, , confirm   q quit"))
	sb.WriteString("\n")

	return sb.String()
}

// renderFight draws the HUD, the arena strip and the status lines.
func (m Model) renderFight() string {
	g := m.game
	f1, f2 := g.Fighters[0], g.Fighters[1]

	var sb strings.Builder

	// Round header with the round clock in the middle.
	header := fmt.Sprintf("ROUND %d          %3d          BEST OF 3",
		g.CurrentRound, int(g.RoundTimeRemaining()))
	sb.WriteString(center(titleStyle.Render(header), arenaCols))
	sb.WriteString("\n")

	sb.WriteString(renderFighterHUD(f1, p1Style))
	sb.WriteString("\n")
	sb.WriteString(renderFighterHUD(f2, p2Style))
	sb.WriteString("\n\n")

	sb.WriteString(renderArena(f1, f2))

	switch g.Phase {
	case sim.PhaseCountdown:
		sb.WriteString(center(announceStyle.Render(g.CountdownDisplay()), arenaCols))
		sb.WriteString("\n")
	case sim.PhaseRoundOver:
		sb.WriteString(center(announceStyle.Render("ROUND OVER"), arenaCols))
		sb.WriteString("\n")
	case sim.PhaseMatchOver:
		name := "???"
		if winner, ok := g.Winner(); ok {
			name = g.Fighters[winner].Data.Name
		}
		sb.WriteString(center(announceStyle.Render(name+" WINS THE MATCH"), arenaCols))
		sb.WriteString("\n")
		sb.WriteString(center(dimStyle.Render("r rematch   f fighter select   q quit"), arenaCols))
		sb.WriteString("\n")
	}

	if g.LastHitInfo != "" {
		sb.WriteString(center(hitStyle.Render(g.LastHitInfo), arenaCols))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(" P1: wasd  j/k/l atk  u/i/o kicks  spc block  tab dash"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(" P2: arrows  ,/. and / atk  m/n/b kicks  0 block  9 dash"))
	sb.WriteString("\n")

	return sb.String()
}

// renderFighterHUD draws one fighter's name, health and stamina bars and
// round win pips.
func renderFighterHUD(f *sim.Fighter, style lipgloss.Style) string {
	const barCells = 20

	health := bar(f.HealthPct(), barCells, '█')
	stamina := bar(f.StaminaPct(), barCells, '▒')
	wins := strings.Repeat("*", int(f.RoundWins))

	return fmt.Sprintf(" %-10s HP %s  ST %s  %s",
		f.Data.Name, style.Render(health), dimStyle.Render(stamina), wins)
}

// bar renders a fixed-width gauge filled proportionally to pct.
func bar(pct float32, cells int, fill rune) string {
	filled := int(pct*float32(cells) + 0.5)
	filled = core.Clamp(filled, 0, cells)
	return strings.Repeat(string(fill), filled) + strings.Repeat("░", cells-filled)
}

// renderArena draws a side view of the arena: an air row for launched
// fighters, a ground row, and the floor line.
func renderArena(f1, f2 *sim.Fighter) string {
	air := make([]rune, arenaCols)
	ground := make([]rune, arenaCols)
	for i := range air {
		air[i] = ' '
		ground[i] = ' '
	}

	place := func(f *sim.Fighter) {
		col := arenaColumn(f.Body.Position.X())
		row := ground
		if !f.Body.Grounded {
			row = air
		}
		glyph := fighterGlyph(f)
		if row[col] != ' ' {
			glyph = 'X' // both fighters share the cell
		}
		row[col] = glyph
	}
	place(f1)
	place(f2)

	var sb strings.Builder
	sb.WriteString(" " + string(air) + "\n")
	sb.WriteString(" " + string(ground) + "\n")
	sb.WriteString(" " + groundStyle.Render(strings.Repeat("─", arenaCols)) + "\n")
	return sb.String()
}

// arenaColumn maps a world x coordinate onto the arena strip.
func arenaColumn(x float32) int {
	span := sim.ArenaMaxX - sim.ArenaMinX
	col := int((x - sim.ArenaMinX) / span * float32(arenaCols-1))
	return core.Clamp(col, 0, arenaCols-1)
}

// fighterGlyph picks a single-rune depiction of the fighter's state.
func fighterGlyph(f *sim.Fighter) rune {
	switch f.Machine.State {
	case sim.StateAttacking:
		if f.Facing == core.FacingRight {
			return '>'
		}
		return '<'
	case sim.StateBlocking:
		return '#'
	case sim.StateDashing:
		return '~'
	case sim.StateHitStun:
		return '*'
	case sim.StateKnockdown:
		return '_'
	case sim.StateGettingUp:
		return ','
	case sim.StateAirborne:
		return '^'
	default:
		return '@'
	}
}

// center pads a line to be horizontally centered within width columns.
func center(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
