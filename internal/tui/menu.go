package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/aretw0/journal/pkg/core"
)

// loadMenu lists saved entries and narrows them with a fuzzy query.
type loadMenu struct {
	names    []string
	filtered []int // indices into names
	selected int
	query    textinput.Model
	rows     int
}

type menuAction int

const (
	menuNone menuAction = iota
	menuSelect
	menuCancel
)

func newLoadMenu(names []string, width, rows int) *loadMenu {
	ti := textinput.New()
	ti.Placeholder = "Filter entries..."
	ti.Prompt = "/ "
	ti.Width = max(width-4, 10)
	ti.Focus()

	m := &loadMenu{names: names, query: ti, rows: max(rows, 1)}
	m.applyFilter()
	return m
}

func (m *loadMenu) applyFilter() {
	q := strings.TrimSpace(m.query.Value())
	if q == "" {
		m.filtered = make([]int, len(m.names))
		for i := range m.names {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(q, m.names)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

// Current returns the highlighted filename, or "" when nothing matches.
func (m *loadMenu) Current() string {
	if len(m.filtered) == 0 {
		return ""
	}
	return m.names[m.filtered[m.selected]]
}

// Update handles a key. menuSelect means Current holds the pick.
func (m *loadMenu) Update(msg tea.KeyMsg) (menuAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return menuCancel, nil
	case "enter":
		if m.Current() == "" {
			return menuNone, nil
		}
		return menuSelect, nil
	case "up", "ctrl+p":
		if m.selected > 0 {
			m.selected--
		}
		return menuNone, nil
	case "down", "ctrl+n":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return menuNone, nil
	}

	var cmd tea.Cmd
	before := m.query.Value()
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() != before {
		m.applyFilter()
	}
	return menuNone, cmd
}

func (m *loadMenu) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Load Entry"))
	b.WriteString("\n")
	b.WriteString(m.query.View())
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString(mutedStyle.Render("  no matches"))
		return b.String()
	}

	// keep the selection inside the visible window
	start := 0
	if m.selected >= m.rows {
		start = m.selected - m.rows + 1
	}
	end := min(start+m.rows, len(m.filtered))
	for i := start; i < end; i++ {
		title := core.Stem(m.names[m.filtered[i]])
		if i == m.selected {
			b.WriteString(cursorStyle.Render("> " + title))
		} else {
			b.WriteString("  " + title)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
