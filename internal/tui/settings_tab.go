package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/journal/internal/platform"
	"github.com/aretw0/journal/pkg/settings"
)

type settingsRow int

const (
	rowWidth settingsRow = iota
	rowHeight
	rowReveal
	rowReset
	rowCount
)

// sliderStep is how far one left/right press moves a size slider.
const sliderStep = 50

const sliderCells = 24

func (p Panel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		p.row = (p.row + rowCount - 1) % rowCount
	case "down", "tab":
		p.row = (p.row + 1) % rowCount
	case "left":
		p.adjust(-sliderStep)
	case "right":
		p.adjust(sliderStep)
	case "enter":
		switch p.row {
		case rowReveal:
			p.revealNotes()
		case rowReset:
			p.resetSettings()
		}
	}
	return p, nil
}

func (p *Panel) adjust(delta int) {
	s := p.settings
	switch p.row {
	case rowWidth:
		s.Layout.Width += delta
	case rowHeight:
		s.Layout.Height += delta
	default:
		return
	}
	s.Clamp()
	if s == p.settings {
		return
	}
	p.settings = s
	p.persistSettings(msgSettingsSaved)
}

func (p *Panel) resetSettings() {
	p.settings.Reset()
	p.persistSettings(msgSettingsReset)
}

func (p *Panel) persistSettings(done string) {
	if p.saveSettings != nil {
		if err := p.saveSettings(p.settings); err != nil {
			p.setStatus(statusErr, "Error saving settings: "+err.Error())
			return
		}
	}
	p.setStatus(statusOK, done)
}

func (p *Panel) revealNotes() {
	dir := p.svc.Location()
	if err := p.reveal(dir); err != nil {
		if errors.Is(err, platform.ErrDirectoryNotFound) {
			p.setStatus(statusWarn, msgDirNotFound)
			return
		}
		p.setStatus(statusErr, err.Error())
		return
	}
	p.setStatus(statusInfo, "Opened "+dir)
}

// Settings returns the settings as edited in the panel.
func (p Panel) Settings() settings.Settings {
	return p.settings
}

func (p Panel) viewSettings() string {
	l := p.settings.Layout
	lines := []string{
		p.settingsLine(rowWidth, fmt.Sprintf("Width   %s %4d", slider(l.Width, settings.MinWidth, settings.MaxWidth), l.Width)),
		p.settingsLine(rowHeight, fmt.Sprintf("Height  %s %4d", slider(l.Height, settings.MinHeight, settings.MaxHeight), l.Height)),
		"",
		p.settingsLine(rowReveal, "[ Open Export Directory ]"),
		p.settingsLine(rowReset, "[ Reset Settings ]"),
		"",
		mutedStyle.Render("Notes: " + p.svc.Location()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p Panel) settingsLine(row settingsRow, text string) string {
	if p.row == row {
		return cursorStyle.Render("> " + text)
	}
	return "  " + text
}

// slider draws v inside [lo,hi] as a bar of fixed width.
func slider(v, lo, hi int) string {
	filled := 0
	if hi > lo {
		filled = (v - lo) * sliderCells / (hi - lo)
	}
	filled = min(max(filled, 0), sliderCells)
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", sliderCells-filled) + "]"
}
