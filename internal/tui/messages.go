package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/journal/pkg/core"
)

// Status lines shown under the editor.
const (
	msgNoTitle       = "Cannot save without a title."
	msgSaved         = "Journal entry saved to: "
	msgNoEntries     = "No entries found."
	msgLoaded        = "Journal entry loaded: "
	msgDeleted       = "Journal entry deleted: "
	msgDirNotFound   = "Export directory not found."
	msgSettingsReset = "Settings reset to default values."
	msgSettingsSaved = "Settings saved. Changes apply on reopen."
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusErr
)

// noteEventMsg wraps a storage change reported by the watcher.
type noteEventMsg struct {
	Event core.Event
}

// eventsClosedMsg is sent once the watcher channel is closed.
type eventsClosedMsg struct{}

// waitForEvent blocks on the next watcher event.
func waitForEvent(events <-chan core.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return noteEventMsg{Event: e}
	}
}
