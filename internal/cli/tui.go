package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

// pickItem is one selectable entry of a picker.
type pickItem struct {
	label string
	value int
}

// pickModel is the bubbletea model for single-value selection. It renders a
// title, a cursor-driven list, and returns the selected value through the
// final model.
type pickModel struct {
	title    string
	items    []pickItem
	cursor   int
	selected bool
	aborted  bool
}

func newPickModel(title string, items []pickItem) pickModel {
	return pickModel{title: title, items: items}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		m.selected = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(item.label) + "\n")
	}

	return b.String()
}

// pickNumber runs a picker and returns the chosen value.
func pickNumber(title string, items []pickItem) (int, error) {
	final, err := tea.NewProgram(newPickModel(title, items)).Run()
	if err != nil {
		return 0, fmt.Errorf("prompt: %w", err)
	}

	m := final.(pickModel)
	if m.aborted || !m.selected {
		return 0, ErrAborted
	}
	return m.items[m.cursor].value, nil
}
