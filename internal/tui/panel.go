// Package tui implements the journal panel: a terminal editor over a
// core.Service with a Journal tab and a Settings tab.
package tui

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/journal/internal/platform"
	"github.com/aretw0/journal/pkg/core"
	"github.com/aretw0/journal/pkg/settings"
)

type tab int

const (
	tabJournal tab = iota
	tabSettings
)

type focus int

const (
	focusTitle focus = iota
	focusBody
	focusButtons
	focusCount
)

type button int

const (
	buttonSave button = iota
	buttonNew
	buttonLoad
	buttonDelete
	buttonCount
)

var buttonLabels = [buttonCount]string{"Save", "New", "Load", "Delete"}

// Config wires a Panel to its service and host capabilities.
type Config struct {
	Service  *core.Service
	Context  context.Context
	Settings settings.Settings

	// Events, when set, feeds watcher events into the panel.
	Events <-chan core.Event

	// Reveal opens a directory in the host file browser. Defaults to platform.Reveal.
	Reveal func(dir string) error

	// SaveSettings persists settings changes. Nil keeps them in memory.
	SaveSettings func(settings.Settings) error
}

// Panel is the bubbletea model of the journal editor.
type Panel struct {
	svc          *core.Service
	ctx          context.Context
	events       <-chan core.Event
	reveal       func(string) error
	saveSettings func(settings.Settings) error

	settings settings.Settings
	base     Layout
	layout   Layout

	tab    tab
	focus  focus
	button button
	row    settingsRow

	title   textinput.Model
	body    textarea.Model
	menu    *loadMenu
	confirm *confirmation

	// loaded is the file the editor is bound to, "" for a new entry, and
	// loadedTitle the title it was loaded or saved under.
	loaded      string
	loadedTitle string

	status     string
	statusKind statusKind

	keys keyMap
	help help.Model
}

// New builds a Panel sized from cfg.Settings.Layout.
func New(cfg Config) Panel {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	reveal := cfg.Reveal
	if reveal == nil {
		reveal = platform.Reveal
	}
	s := cfg.Settings
	s.Clamp()

	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""

	body := textarea.New()
	body.Placeholder = "Write your entry..."
	body.ShowLineNumbers = false
	body.CharLimit = 0

	p := Panel{
		svc:          cfg.Service,
		ctx:          ctx,
		events:       cfg.Events,
		reveal:       reveal,
		saveSettings: cfg.SaveSettings,
		settings:     s,
		base:         NewLayout(s.Layout),
		title:        title,
		body:         body,
		keys:         defaultKeyMap(),
		help:         help.New(),
	}
	p.layout = p.base
	p.resize()
	p.setFocus(focusTitle)
	p.refreshIfStale()
	return p
}

// Run starts the panel on the alternate screen and blocks until it quits.
func Run(cfg Config, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(cfg), opts...).Run()
	return err
}

func (p Panel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(p.events))
}

func (p Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.layout = p.base.Fit(msg.Width, msg.Height)
		p.resize()
		return p, nil

	case noteEventMsg:
		p.svc.Index().MarkStale()
		if p.tab == tabJournal {
			p.refreshIfStale()
		}
		return p, waitForEvent(p.events)

	case eventsClosedMsg:
		p.events = nil
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p.updateInputs(msg)
}

func (p Panel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, p.keys.Quit) {
		return p, tea.Quit
	}

	if p.confirm != nil {
		if answered, yes := p.confirm.Update(msg); answered {
			p.confirm = nil
			if yes {
				p.deleteEntry()
			}
			return p, p.setFocus(p.focus)
		}
		return p, nil
	}

	if p.menu != nil {
		action, cmd := p.menu.Update(msg)
		switch action {
		case menuSelect:
			name := p.menu.Current()
			p.menu = nil
			p.loadEntry(name)
			return p, p.setFocus(focusBody)
		case menuCancel:
			p.menu = nil
			return p, p.setFocus(p.focus)
		}
		return p, cmd
	}

	if key.Matches(msg, p.keys.SwitchTab) {
		return p, p.switchTab()
	}
	if p.tab == tabSettings {
		return p.updateSettings(msg)
	}

	switch {
	case key.Matches(msg, p.keys.Save):
		return p, p.press(buttonSave)
	case key.Matches(msg, p.keys.New):
		return p, p.press(buttonNew)
	case key.Matches(msg, p.keys.Load):
		return p, p.press(buttonLoad)
	case key.Matches(msg, p.keys.Delete):
		return p, p.press(buttonDelete)
	case key.Matches(msg, p.keys.Next):
		return p, p.setFocus((p.focus + 1) % focusCount)
	case key.Matches(msg, p.keys.Prev):
		return p, p.setFocus((p.focus + focusCount - 1) % focusCount)
	}

	if p.focus == focusButtons {
		switch {
		case key.Matches(msg, p.keys.Left):
			p.button = (p.button + buttonCount - 1) % buttonCount
		case key.Matches(msg, p.keys.Right):
			p.button = (p.button + 1) % buttonCount
		case key.Matches(msg, p.keys.Enter):
			return p, p.press(p.button)
		}
		return p, nil
	}

	return p.updateInputs(msg)
}

func (p Panel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch p.focus {
	case focusTitle:
		p.title, cmd = p.title.Update(msg)
	case focusBody:
		p.body, cmd = p.body.Update(msg)
	}
	return p, cmd
}

// press runs the action behind a Journal tab button.
func (p *Panel) press(b button) tea.Cmd {
	switch b {
	case buttonSave:
		p.saveEntry()
	case buttonNew:
		p.clearEditor()
		return p.setFocus(focusTitle)
	case buttonLoad:
		return p.openMenu()
	case buttonDelete:
		if p.title.Value() != "" {
			p.confirm = &confirmation{message: deletePrompt}
		}
	}
	return nil
}

func (p *Panel) saveEntry() {
	title := p.title.Value()
	if title == "" {
		p.setStatus(statusWarn, msgNoTitle)
		return
	}
	p.refreshIfStale()

	body := p.body.Value()
	name := p.boundFile()
	var err error
	if name != "" {
		err = p.svc.WriteNote(p.ctx, name, body)
	} else {
		name, err = p.svc.SaveNote(p.ctx, title, body)
	}
	if err != nil {
		p.setStatus(statusErr, "Error saving journal entry: "+err.Error())
		return
	}

	p.loaded, p.loadedTitle = name, title
	p.setStatus(statusOK, msgSaved+p.entryPath(name))
}

func (p *Panel) openMenu() tea.Cmd {
	names := p.svc.Refresh(p.ctx)
	if len(names) == 0 {
		p.setStatus(statusWarn, msgNoEntries)
		return nil
	}
	p.title.Blur()
	p.body.Blur()
	p.menu = newLoadMenu(names, p.layout.InnerWidth(), p.layout.BodyHeight())
	return textinput.Blink
}

func (p *Panel) loadEntry(name string) {
	note, err := p.svc.LoadNote(p.ctx, name)
	if err != nil {
		p.setStatus(statusErr, "Error loading journal entry: "+err.Error())
		return
	}
	p.title.SetValue(note.Title)
	p.body.SetValue(note.Body)
	p.loaded, p.loadedTitle = note.Name, note.Title
	p.setStatus(statusOK, msgLoaded+note.Title)
}

// boundFile returns the loaded file while the title is unchanged since it was
// loaded or saved, and "" otherwise.
func (p *Panel) boundFile() string {
	if p.loaded != "" && p.title.Value() == p.loadedTitle {
		return p.loaded
	}
	return ""
}

// deleteEntry removes the bound file, or "<title>.txt" when there is none.
func (p *Panel) deleteEntry() {
	title := p.title.Value()
	name := p.boundFile()
	if name == "" {
		name = title + core.NoteExt
	}
	if err := p.svc.DeleteNote(p.ctx, name); err != nil {
		p.setStatus(statusErr, "Error deleting journal entry: "+err.Error())
		return
	}
	p.clearEditor()
	p.setStatus(statusOK, msgDeleted+title)
}

func (p *Panel) clearEditor() {
	p.title.Reset()
	p.body.Reset()
	p.loaded, p.loadedTitle = "", ""
}

func (p *Panel) switchTab() tea.Cmd {
	if p.tab == tabJournal {
		p.tab = tabSettings
		p.title.Blur()
		p.body.Blur()
		return nil
	}
	p.tab = tabJournal
	p.refreshIfStale()
	return p.setFocus(p.focus)
}

func (p *Panel) refreshIfStale() {
	if p.svc.Index().Stale() {
		p.svc.Refresh(p.ctx)
	}
}

func (p *Panel) setFocus(f focus) tea.Cmd {
	p.focus = f
	p.title.Blur()
	p.body.Blur()
	switch f {
	case focusTitle:
		return p.title.Focus()
	case focusBody:
		return p.body.Focus()
	}
	return nil
}

func (p *Panel) setStatus(kind statusKind, text string) {
	p.statusKind = kind
	p.status = text
}

func (p *Panel) entryPath(name string) string {
	if dir := p.svc.Location(); dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}

func (p *Panel) resize() {
	inner := p.layout.InnerWidth()
	p.title.Width = inner - 1
	p.body.SetWidth(inner)
	p.body.SetHeight(p.layout.BodyHeight())
	p.help.Width = inner
}

func (p Panel) View() string {
	inner := p.layout.InnerWidth()

	var content string
	switch {
	case p.tab == tabSettings:
		content = p.viewSettings()
	case p.confirm != nil:
		content = p.confirm.View()
	case p.menu != nil:
		content = p.menu.View()
	default:
		content = p.viewEditor()
	}

	status := statusStyles[p.statusKind].Width(inner).Render(p.status)
	return panelStyle.Width(p.layout.Width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		p.viewTabs(),
		"",
		content,
		status,
		p.help.View(p.keys),
	))
}

func (p Panel) viewTabs() string {
	names := []string{"Journal", "Settings"}
	parts := make([]string, len(names))
	for i, name := range names {
		style := tabStyle
		if tab(i) == p.tab {
			style = activeTabStyle
		}
		parts[i] = style.Width(p.layout.TabWidth).Render(name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (p Panel) viewEditor() string {
	inner := p.layout.InnerWidth()
	label := labelStyle.Width(inner)

	buttons := make([]string, 0, 2*buttonCount)
	gap := strings.Repeat(" ", p.layout.ButtonGap)
	for i, text := range buttonLabels {
		style := buttonStyle
		if p.focus == focusButtons && p.button == button(i) {
			style = focusedButtonStyle
		}
		if i > 0 {
			buttons = append(buttons, gap)
		}
		buttons = append(buttons, style.Width(p.layout.ButtonWidth).Render(text))
	}
	row := lipgloss.PlaceHorizontal(inner, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	return lipgloss.JoinVertical(lipgloss.Left,
		label.Render("Entry Title"),
		p.title.View(),
		label.Render("Entry Body"),
		p.body.View(),
		row,
	)
}
