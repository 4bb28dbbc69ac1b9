package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duel/internal/roster"
	"github.com/vovakirdan/tui-duel/internal/sim"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

// ModelConfig holds startup options for a duel session.
type ModelConfig struct {
	// P1Fighter and P2Fighter are catalog IDs. If either is empty the
	// session starts at the fighter select screen.
	P1Fighter string
	P2Fighter string

	// TickRate is the simulation rate in frames per second.
	TickRate int

	// Store receives finished match results. May be nil.
	Store *storage.Store
}

// Model is the Bubble Tea model for a local two-player duel.
type Model struct {
	game     *sim.Game
	store    *storage.Store
	keys     *KeyMapper
	tickRate int

	catalog []roster.Info
	cursor  [2]int
	locked  [2]bool

	p1Pending pendingInput
	p2Pending pendingInput

	width      int
	height     int
	matchSaved bool
	quitting   bool
	selectErr  error
}

// NewModel creates a new Bubble Tea model for a duel session.
func NewModel(cfg ModelConfig) (Model, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = sim.TicksPerSecond
	}

	catalog, err := roster.List()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		store:    cfg.Store,
		keys:     NewKeyMapper(),
		tickRate: cfg.TickRate,
		catalog:  catalog,
	}

	if cfg.P1Fighter != "" && cfg.P2Fighter != "" {
		game, err := sim.New(cfg.P1Fighter, cfg.P2Fighter)
		if err != nil {
			return Model{}, err
		}
		m.game = game
	} else {
		m.game = sim.NewInSelect()
	}

	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}

	switch m.game.Phase {
	case sim.PhaseSelect:
		return m.handleSelectKey(msg)

	case sim.PhaseMatchOver:
		switch msg.String() {
		case "r":
			// Rematch with the same fighters.
			game, err := sim.New(m.game.Fighters[0].Data.ID, m.game.Fighters[1].Data.ID)
			if err == nil {
				m.game = game
				m.matchSaved = false
				m.p1Pending.clear()
				m.p2Pending.clear()
			}
		case "f":
			// Back to fighter select.
			m.game = sim.NewInSelect()
			m.locked = [2]bool{}
			m.matchSaved = false
			m.p1Pending.clear()
			m.p2Pending.clear()
		}
		return m, nil

	default:
		m.keys.MapKeyToFight(msg, &m.p1Pending, &m.p2Pending)
		return m, nil
	}
}

// handleSelectKey drives the fighter select screen.
func (m Model) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	player, action := m.keys.MapKeyToSelect(msg)
	if action == SelectActionNone || m.locked[player] || len(m.catalog) == 0 {
		return m, nil
	}

	n := len(m.catalog)
	switch action {
	case SelectActionPrev:
		m.cursor[player] = (m.cursor[player] - 1 + n) % n
	case SelectActionNext:
		m.cursor[player] = (m.cursor[player] + 1) % n
	case SelectActionConfirm:
		m.locked[player] = true
	}

	if m.locked[0] && m.locked[1] {
		p1 := m.catalog[m.cursor[0]].ID
		p2 := m.catalog[m.cursor[1]].ID
		if err := m.game.SelectFighters(p1, p2); err != nil {
			m.selectErr = err
			m.locked = [2]bool{}
		}
	}

	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	switch m.game.Phase {
	case sim.PhaseSelect, sim.PhaseMatchOver:
		// Nothing to simulate; keep ticking so the UI stays responsive.

	default:
		p1 := m.p1Pending.toState(m.game.Fighters[0].Facing)
		p2 := m.p2Pending.toState(m.game.Fighters[1].Facing)
		m.game.Tick(&p1, &p2)
	}

	m.p1Pending.clear()
	m.p2Pending.clear()

	// Record the match once, when it ends.
	if m.game.Phase == sim.PhaseMatchOver && !m.matchSaved {
		if winner, ok := m.game.Winner(); ok && m.store != nil {
			//nolint:errcheck // Best-effort save, the session continues regardless
			m.store.SaveMatch(storage.MatchResult{
				P1Fighter:      m.game.Fighters[0].Data.ID,
				P2Fighter:      m.game.Fighters[1].Data.ID,
				P1Rounds:       int(m.game.Fighters[0].RoundWins),
				P2Rounds:       int(m.game.Fighters[1].RoundWins),
				WinnerPlayer:   winner + 1,
				WinnerFighter:  m.game.Fighters[winner].Data.ID,
				DurationFrames: int(m.game.Frame),
			})
		}
		m.matchSaved = true
	}

	return m, tickCmd(m.tickRate)
}

// Run starts the Bubble Tea program and blocks until the session ends.
func (m Model) Run() error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
