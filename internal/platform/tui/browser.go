package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lazor/internal/puzzles"
)

// BrowserItem represents a selectable puzzle in the browser.
type BrowserItem struct {
	PuzzleID string
	Name     string
	Blocks   int
}

// BrowserModel is the Bubble Tea model for the puzzle picker.
type BrowserModel struct {
	items       []BrowserItem
	cursor      int
	width       int
	height      int
	keyMapper   *KeyMapper
	quitting    bool
	selected    *BrowserItem // Set when user selects a puzzle
	openHistory bool         // True if user pressed Tab for history
}

// NewBrowserModel creates a new browser model over the given puzzles.
func NewBrowserModel(list []puzzles.Puzzle) BrowserModel {
	items := make([]BrowserItem, 0, len(list))
	for _, p := range list {
		items = append(items, BrowserItem{
			PuzzleID: p.ID,
			Name:     p.Name,
			Blocks:   p.Counts.Total(),
		})
	}

	return BrowserModel{
		items:     items,
		cursor:    0,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for browser navigation.
func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
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

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit browser to start the solve
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit // Exit browser to show history
	}

	return m, nil
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := styleTitle.Render("  L A Z O R  ")
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	subtitle := styleSubtle.Render("Select a puzzle")
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(styleError.Render("No puzzles found"), m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = styleCursor.Render("> ")
		}

		line := fmt.Sprintf("%s%s (%d blocks)", cursor, item.Name, item.Blocks)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := styleSubtle.Render("Up/Down: Navigate  |  Enter: Solve  |  Tab: History  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected puzzle item, or nil if none selected.
func (m BrowserModel) Selected() *BrowserItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history view.
func (m BrowserModel) WantsHistory() bool {
	return m.openHistory
}
