package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/core"
	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Preset config.DifficultyPreset
	Depth  int
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	side           engine.Side
	rules          string
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(oc config.OthelloConfig, cfg core.RuntimeConfig) MenuModel {
	presets := config.Presets()
	items := make([]MenuItem, 0, len(presets))
	for _, p := range presets {
		items = append(items, MenuItem{Preset: p, Depth: config.DepthForPreset(oc, p)})
	}

	return MenuModel{
		items:     items,
		cursor:    1, // medium
		side:      oc.HumanSide(),
		rules:     engine.NewRules(oc.Rules.Diagonals).Name(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft, MenuActionRight:
		m.side = m.side.Opponent()

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  O T H E L L O  "), m.width, 17))
	b.WriteString("\n\n")

	subtitle := fmt.Sprintf("Choose a difficulty (%s rules)", m.rules)
	b.WriteString(centerText(subtitle, m.width, len(subtitle)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s depth %d", cursor, item.Preset, item.Depth)
		styled := line
		if i == m.cursor {
			styled = activeStyle.Render(line)
		}
		b.WriteString(centerText(styled, m.width, len(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	side := fmt.Sprintf("You play: < %s >", m.side)
	b.WriteString(centerText(side, m.width, len(side)))
	b.WriteString("\n\n")

	controls := "Up/Down: Difficulty  |  Left/Right: Side  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width, len(controls)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Side returns the side the player chose.
func (m MenuModel) Side() engine.Side {
	return m.side
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width. visible is the printed
// width of text, which differs from len when it carries ANSI styling.
func centerText(text string, width, visible int) string {
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	Side            engine.Side
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(oc config.OthelloConfig, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(oc, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.Result(), nil
}

// Result summarizes the menu's final state.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{
		Config: m.Config(),
		Side:   m.side,
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.Preset = m.Selected().Preset
	}
	return result
}
