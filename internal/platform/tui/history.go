package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-duel/internal/storage"
)

const maxHistoryRows = 100

// historyView selects which table the history screen shows.
type historyView int

const (
	viewMatches historyView = iota
	viewRecords
)

// HistoryKeyMap defines the key bindings for the match history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Switch, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "matches/records"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing match history.
type HistoryModel struct {
	store    *storage.Store
	matches  []storage.MatchResult
	records  []storage.FighterRecord
	view     historyView
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model and loads both datasets.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	if store != nil {
		if matches, err := store.RecentMatches(maxHistoryRows); err == nil {
			m.matches = matches
		}
		if records, err := store.FighterRecords(); err == nil {
			m.records = records
		}
	}

	m.table = m.createTable()
	return m
}

// createTable builds the table for the current view.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.view == viewMatches {
		columns = []table.Column{
			{Title: "P1", Width: 12},
			{Title: "P2", Width: 12},
			{Title: "Score", Width: 7},
			{Title: "Winner", Width: 12},
			{Title: "Date", Width: 16},
		}
	} else {
		columns = []table.Column{
			{Title: "Fighter", Width: 14},
			{Title: "Wins", Width: 8},
			{Title: "Matches", Width: 8},
		}
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.fillRows(&t)
	return t
}

// fillRows populates the table with the current view's data.
func (m *HistoryModel) fillRows(t *table.Model) {
	var rows []table.Row
	if m.view == viewMatches {
		rows = make([]table.Row, len(m.matches))
		for i, match := range m.matches {
			rows[i] = table.Row{
				match.P1Fighter,
				match.P2Fighter,
				fmt.Sprintf("%d-%d", match.P1Rounds, match.P2Rounds),
				match.WinnerFighter,
				match.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.records))
		for i, r := range m.records {
			rows[i] = table.Row{
				r.FighterID,
				fmt.Sprintf("%d", r.Wins),
				fmt.Sprintf("%d", r.Matches),
			}
		}
	}
	t.SetRows(rows)
	t.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewMatches {
				m.view = viewRecords
			} else {
				m.view = viewMatches
			}
			m.table = m.createTable()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	title := "MATCH HISTORY"
	if m.view == viewRecords {
		title = "FIGHTER RECORDS"
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1).
		Render(center(title, m.width))

	body := m.table.View()
	if m.view == viewMatches && len(m.matches) == 0 ||
		m.view == viewRecords && len(m.records) == 0 {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No matches recorded yet.\nPlay a match to start the history!")
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(body)

	helpBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))

	return header + "\n\n" + frame + "\n" + helpBar
}

// RunHistory runs the match history screen and blocks until it is closed.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
