package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the stats sidebar
	sidebarWidth       = 22  // Width of the stats sidebar
	maxResults         = 100 // Max results to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreboardTabs lists the filters; the empty string shows every game.
func scoreboardTabs() []string {
	tabs := []string{""}
	for _, p := range config.Presets() {
		tabs = append(tabs, string(p))
	}
	return tabs
}

func tabTitle(tab string) string {
	if tab == "" {
		return "all"
	}
	return tab
}

// ScoreboardModel is the Bubble Tea model for the results screen.
type ScoreboardModel struct {
	tabs        []string
	tabCursor   int
	store       *storage.Store
	results     []storage.Result
	stats       *storage.Stats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the stats sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		tabs:        scoreboardTabs(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadResults()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Side", Width: 6},
		{Title: "Level", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 13},
	}

	height := m.height - 8 // Leave room for header, help, and margins
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

	return t
}

// loadResults loads results and stats for the current tab.
func (m *ScoreboardModel) loadResults() {
	m.results = nil
	m.stats = nil
	if m.store != nil {
		difficulty := m.tabs[m.tabCursor]
		var err error
		if difficulty == "" {
			m.results, err = m.store.RecentResults(maxResults)
		} else {
			m.results, err = m.store.ResultsByDifficulty(difficulty, maxResults)
		}
		if err != nil {
			m.results = nil
		}
		if stats, err := m.store.Stats(difficulty); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = resultRow(i+1, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// resultRow formats one ledger entry for the table.
func resultRow(n int, r storage.Result) table.Row {
	return table.Row{
		fmt.Sprintf("%d", n),
		r.Outcome(),
		fmt.Sprintf("%d-%d", r.Dark, r.Light),
		r.HumanSide,
		r.Difficulty,
		fmt.Sprintf("%d", r.Moves),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.loadResults()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tabCursor--
			if m.tabCursor < 0 {
				m.tabCursor = len(m.tabs) - 1
			}
			m.loadResults()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("RESULTS - %s", tabTitle(m.tabs[m.tabCursor]))
	b.WriteString(titleStyle.Render(centerText(title, m.width, len(title))))
	b.WriteString("\n\n")

	tabs := m.renderTabs()
	b.WriteString(centerText(tabs, m.width, lipgloss.Width(tabs)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
		b.WriteString("\n")
		b.WriteString(m.statsLine())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the difficulty filter tabs.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.tabCursor {
			tabs[i] = activeTabStyle.Render(tabTitle(tab))
		} else {
			tabs[i] = tabStyle.Render(" " + tabTitle(tab) + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderSidebar renders aggregate stats next to the table.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	if m.stats == nil || m.stats.Games == 0 {
		sb.WriteString("No games yet")
	} else {
		fmt.Fprintf(&sb, "Games   %d\n", m.stats.Games)
		fmt.Fprintf(&sb, "Wins    %d\n", m.stats.Wins)
		fmt.Fprintf(&sb, "Losses  %d\n", m.stats.Losses)
		fmt.Fprintf(&sb, "Draws   %d\n", m.stats.Draws)
		fmt.Fprintf(&sb, "Best    %+d", m.stats.BestMargin)
	}
	return sidebarStyle.Render(sb.String())
}

// statsLine is the narrow-layout version of the sidebar.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Games == 0 {
		return ""
	}
	return fmt.Sprintf("%d games  %dW %dL %dD  best %+d",
		m.stats.Games, m.stats.Wins, m.stats.Losses, m.stats.Draws, m.stats.BestMargin)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nBeat the engine to get on the board!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
