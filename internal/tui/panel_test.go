package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/journal/internal/platform"
	"github.com/aretw0/journal/pkg/adapters/fs"
	"github.com/aretw0/journal/pkg/core"
	"github.com/aretw0/journal/pkg/settings"
)

func newTestPanel(t *testing.T, opts ...func(*Config)) (Panel, *core.Service, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "Journal")
	svc := core.NewService(fs.NewRepository(fs.Config{Path: dir}), nil)
	cfg := Config{
		Service:  svc,
		Settings: settings.Default(),
		Reveal:   func(string) error { return nil },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg), svc, dir
}

func send(p Panel, msgs ...tea.Msg) Panel {
	for _, msg := range msgs {
		m, _ := p.Update(msg)
		p = m.(Panel)
	}
	return p
}

func typed(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func press(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func writeEntry(t *testing.T, p Panel, title, body string) Panel {
	t.Helper()
	p = send(p, press(tea.KeyCtrlN))
	p = send(p, typed(title)...)
	p = send(p, press(tea.KeyTab))
	p = send(p, typed(body)...)
	return send(p, press(tea.KeyCtrlS))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestPanel_SaveRequiresTitle(t *testing.T) {
	p, svc, _ := newTestPanel(t)

	p = send(p, press(tea.KeyCtrlS))

	assert.Equal(t, msgNoTitle, p.status)
	assert.Equal(t, statusWarn, p.statusKind)
	assert.Empty(t, svc.ListNotes(context.Background()))
}

func TestPanel_SaveResolvesCollisions(t *testing.T) {
	p, _, dir := newTestPanel(t)

	p = writeEntry(t, p, "Day 1", "Hello")
	assert.Equal(t, msgSaved+filepath.Join(dir, "Day 1.txt"), p.status)
	assert.Equal(t, "Hello", readFile(t, filepath.Join(dir, "Day 1.txt")))

	p = writeEntry(t, p, "Day 1", "Again")
	assert.Equal(t, msgSaved+filepath.Join(dir, "Day 1_2.txt"), p.status)
	assert.Equal(t, "Again", readFile(t, filepath.Join(dir, "Day 1_2.txt")))
	assert.Equal(t, "Hello", readFile(t, filepath.Join(dir, "Day 1.txt")))
}

func TestPanel_SaveOverwritesLoadedEntry(t *testing.T) {
	p, svc, dir := newTestPanel(t)

	p = writeEntry(t, p, "Day 1", "Hello")
	p = send(p, typed(" world")...)
	p = send(p, press(tea.KeyCtrlS))

	assert.Equal(t, []string{"Day 1.txt"}, svc.ListNotes(context.Background()))
	assert.Equal(t, "Hello world", readFile(t, filepath.Join(dir, "Day 1.txt")))

	// a collided save stays bound to its own file
	p = writeEntry(t, p, "Day 1", "v1")
	require.Equal(t, "Day 1_2.txt", p.loaded)
	p = send(p, typed("+v2")...)
	p = send(p, press(tea.KeyCtrlS))
	assert.Equal(t, "v1+v2", readFile(t, filepath.Join(dir, "Day 1_2.txt")))
	assert.NoFileExists(t, filepath.Join(dir, "Day 1_3.txt"))

	// a renamed title is a new entry
	p = send(p, press(tea.KeyShiftTab))
	p = send(p, typed("!")...)
	p = send(p, press(tea.KeyCtrlS))
	assert.Equal(t, "Day 1!.txt", p.loaded)
	assert.ElementsMatch(t, []string{"Day 1.txt", "Day 1_2.txt", "Day 1!.txt"}, svc.ListNotes(context.Background()))
}

func TestPanel_Load(t *testing.T) {
	t.Run("No Entries", func(t *testing.T) {
		p, _, _ := newTestPanel(t)

		p = send(p, press(tea.KeyCtrlO))

		assert.Nil(t, p.menu)
		assert.Equal(t, msgNoEntries, p.status)
	})

	t.Run("Fuzzy Filter and Select", func(t *testing.T) {
		p, svc, _ := newTestPanel(t)
		ctx := context.Background()
		require.NoError(t, svc.WriteNote(ctx, "Day 1.txt", "first"))
		require.NoError(t, svc.WriteNote(ctx, "Day 1_2.txt", "second"))

		p = send(p, press(tea.KeyCtrlO))
		require.NotNil(t, p.menu)
		assert.Len(t, p.menu.filtered, 2)

		p = send(p, typed("_2")...)
		require.NotNil(t, p.menu)
		assert.Equal(t, "Day 1_2.txt", p.menu.Current())

		p = send(p, press(tea.KeyEnter))
		assert.Nil(t, p.menu)
		assert.Equal(t, "Day 1_2", p.title.Value())
		assert.Equal(t, "second", p.body.Value())
		assert.Equal(t, "Day 1_2.txt", p.loaded)
		assert.Equal(t, msgLoaded+"Day 1_2", p.status)
	})

	t.Run("Escape Closes Menu", func(t *testing.T) {
		p, svc, _ := newTestPanel(t)
		require.NoError(t, svc.WriteNote(context.Background(), "a.txt", "x"))

		p = send(p, press(tea.KeyCtrlO), press(tea.KeyEsc))

		assert.Nil(t, p.menu)
		assert.Empty(t, p.title.Value())
	})
}

func TestPanel_Delete(t *testing.T) {
	t.Run("Requires Title", func(t *testing.T) {
		p, _, _ := newTestPanel(t)
		p = send(p, press(tea.KeyCtrlD))
		assert.Nil(t, p.confirm)
	})

	t.Run("Declined", func(t *testing.T) {
		p, _, dir := newTestPanel(t)
		p = writeEntry(t, p, "Day 1", "Hello")

		p = send(p, press(tea.KeyCtrlD))
		require.NotNil(t, p.confirm)
		assert.Contains(t, p.View(), deletePrompt)

		p = send(p, typed("n")...)
		assert.Nil(t, p.confirm)
		assert.FileExists(t, filepath.Join(dir, "Day 1.txt"))
		assert.Equal(t, "Day 1", p.title.Value())
	})

	t.Run("Confirmed", func(t *testing.T) {
		p, svc, dir := newTestPanel(t)
		p = writeEntry(t, p, "Day 1", "Hello")
		p = writeEntry(t, p, "Day 1", "Second")
		require.Equal(t, "Day 1_2.txt", p.loaded)

		p = send(p, press(tea.KeyCtrlD), typed("y")[0])

		assert.NoFileExists(t, filepath.Join(dir, "Day 1_2.txt"))
		assert.FileExists(t, filepath.Join(dir, "Day 1.txt"))
		assert.Empty(t, p.title.Value())
		assert.Empty(t, p.body.Value())
		assert.Empty(t, p.loaded)
		assert.Equal(t, msgDeleted+"Day 1", p.status)
		assert.NotContains(t, svc.Names(), "Day 1_2.txt")
	})

	t.Run("Missing File Reports Error", func(t *testing.T) {
		p, _, _ := newTestPanel(t)
		p = send(p, typed("ghost")...)
		p = send(p, press(tea.KeyCtrlD), press(tea.KeyEnter))

		assert.Equal(t, statusErr, p.statusKind)
		assert.Equal(t, "ghost", p.title.Value(), "editor is kept on failure")
	})
}

func TestPanel_Buttons(t *testing.T) {
	p, _, _ := newTestPanel(t)
	p = send(p, typed("Note")...)

	p = send(p, press(tea.KeyTab), press(tea.KeyTab))
	require.Equal(t, focusButtons, p.focus)
	assert.Equal(t, buttonSave, p.button)

	p = send(p, press(tea.KeyEnter))
	assert.Equal(t, "Note.txt", p.loaded)

	p = send(p, press(tea.KeyRight))
	assert.Equal(t, buttonNew, p.button)
	p = send(p, press(tea.KeyEnter))
	assert.Empty(t, p.title.Value())
	assert.Equal(t, focusTitle, p.focus)

	p = send(p, press(tea.KeyShiftTab), press(tea.KeyLeft), press(tea.KeyLeft))
	assert.Equal(t, buttonDelete, p.button, "left wraps around")
}

func TestPanel_Settings(t *testing.T) {
	var saved []settings.Settings
	p, _, _ := newTestPanel(t, func(c *Config) {
		c.SaveSettings = func(s settings.Settings) error {
			saved = append(saved, s)
			return nil
		}
	})

	p = send(p, press(tea.KeyCtrlT))
	require.Equal(t, tabSettings, p.tab)
	assert.Contains(t, p.View(), "Width")

	p = send(p, press(tea.KeyRight))
	assert.Equal(t, 750, p.Settings().Layout.Width)
	require.Len(t, saved, 1)
	assert.Equal(t, 750, saved[0].Layout.Width)
	assert.Equal(t, msgSettingsSaved, p.status)

	for range 20 {
		p = send(p, press(tea.KeyLeft))
	}
	assert.Equal(t, settings.MinWidth, p.Settings().Layout.Width)

	p = send(p, press(tea.KeyDown), press(tea.KeyRight), press(tea.KeyRight), press(tea.KeyRight))
	assert.Equal(t, settings.MaxHeight, p.Settings().Layout.Height)
	n := len(saved)
	p = send(p, press(tea.KeyRight))
	assert.Len(t, saved, n, "no save when the slider is pinned")

	p = send(p, press(tea.KeyDown), press(tea.KeyDown), press(tea.KeyEnter))
	assert.Equal(t, settings.Default().Layout, p.Settings().Layout)
	assert.Equal(t, msgSettingsReset, p.status)
	assert.Equal(t, settings.Default().Layout, saved[len(saved)-1].Layout)
}

func TestPanel_SettingsSaveError(t *testing.T) {
	p, _, _ := newTestPanel(t, func(c *Config) {
		c.SaveSettings = func(settings.Settings) error { return fmt.Errorf("disk full") }
	})

	p = send(p, press(tea.KeyCtrlT), press(tea.KeyRight))

	assert.Equal(t, statusErr, p.statusKind)
	assert.Contains(t, p.status, "disk full")
}

func TestPanel_Reveal(t *testing.T) {
	t.Run("Missing Directory", func(t *testing.T) {
		p, _, _ := newTestPanel(t, func(c *Config) {
			c.Reveal = func(dir string) error { return fmt.Errorf("%w: %s", platform.ErrDirectoryNotFound, dir) }
		})

		p = send(p, press(tea.KeyCtrlT), press(tea.KeyUp), press(tea.KeyUp), press(tea.KeyEnter))

		assert.Equal(t, rowReveal, p.row)
		assert.Equal(t, msgDirNotFound, p.status)
	})

	t.Run("Opens Notes Directory", func(t *testing.T) {
		var opened string
		p, _, dir := newTestPanel(t, func(c *Config) {
			c.Reveal = func(d string) error {
				opened = d
				return nil
			}
		})

		p = send(p, press(tea.KeyCtrlT), press(tea.KeyDown), press(tea.KeyDown), press(tea.KeyEnter))

		assert.Equal(t, dir, opened)
		assert.Equal(t, "Opened "+dir, p.status)
	})
}

func TestPanel_WatchEventRefreshesIndex(t *testing.T) {
	p, svc, dir := newTestPanel(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "External.txt"), []byte("x"), 0644))
	assert.NotContains(t, svc.Names(), "External.txt")

	p = send(p, noteEventMsg{Event: core.Event{Type: core.EventCreate, Name: "External.txt"}})
	assert.Contains(t, svc.Names(), "External.txt")
	assert.False(t, svc.Index().Stale())

	// on the settings tab the refresh waits until the journal tab is shown
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Later.txt"), []byte("x"), 0644))
	p = send(p, press(tea.KeyCtrlT), noteEventMsg{Event: core.Event{Type: core.EventCreate, Name: "Later.txt"}})
	assert.True(t, svc.Index().Stale())

	p = send(p, press(tea.KeyCtrlT))
	assert.Contains(t, svc.Names(), "Later.txt")
}

func TestWaitForEvent(t *testing.T) {
	assert.Nil(t, waitForEvent(nil))

	ch := make(chan core.Event, 1)
	ch <- core.Event{Type: core.EventDelete, Name: "a.txt"}
	close(ch)

	cmd := waitForEvent(ch)
	assert.Equal(t, noteEventMsg{Event: core.Event{Type: core.EventDelete, Name: "a.txt"}}, cmd())
	assert.Equal(t, eventsClosedMsg{}, cmd())
}

func TestPanel_Quit(t *testing.T) {
	p, _, _ := newTestPanel(t)
	_, cmd := p.Update(press(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPanel_View(t *testing.T) {
	p, _, _ := newTestPanel(t)
	view := p.View()

	for _, s := range []string{"Journal", "Settings", "Entry Title", "Entry Body", "Save", "New", "Load", "Delete"} {
		assert.Contains(t, view, s)
	}
}
