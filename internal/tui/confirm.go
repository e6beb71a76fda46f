package tui

import tea "github.com/charmbracelet/bubbletea"

const deletePrompt = "Are you sure you want to delete this entry?"

// confirmation is a yes/no prompt rendered in place of the editor.
type confirmation struct {
	message string
}

// Update reports whether the prompt was answered and, if so, the answer.
func (c *confirmation) Update(msg tea.KeyMsg) (answered, yes bool) {
	switch msg.String() {
	case "y", "enter":
		return true, true
	case "n", "esc":
		return true, false
	}
	return false, false
}

func (c *confirmation) View() string {
	return labelStyle.Render(c.message) + "\n\n" +
		statusStyles[statusOK].Render("[y]") + " Yes  " +
		statusStyles[statusErr].Render("[n/esc]") + " No"
}
