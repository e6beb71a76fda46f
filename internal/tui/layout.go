package tui

import "github.com/aretw0/journal/pkg/settings"

// Layout holds the panel geometry in terminal cells. One Layout value
// replaces the per-variant hard-coded panels; every widget position is
// derived from it.
type Layout struct {
	Width       int // total panel columns, border included
	Height      int // total panel rows, border included
	TabWidth    int
	ButtonWidth int
	ButtonGap   int
}

// Cell sizes used to convert the pixel-style settings into terminal cells.
const (
	pxPerColumn = 10
	pxPerRow    = 25

	minColumns = 48
	minRows    = 14

	// rows used by everything but the body textarea: border (2), tabs,
	// blank, two labels, title input, buttons, status and help.
	chromeRows = 10
)

// NewLayout converts a settings layout into cells.
func NewLayout(l settings.Layout) Layout {
	return Layout{
		Width:       max(l.Width/pxPerColumn, minColumns),
		Height:      max(l.Height/pxPerRow, minRows),
		TabWidth:    20,
		ButtonWidth: 10,
		ButtonGap:   1,
	}
}

// Fit shrinks the layout to a terminal of the given size.
func (l Layout) Fit(width, height int) Layout {
	if width > 0 && l.Width > width {
		l.Width = max(width, minColumns)
	}
	if height > 0 && l.Height > height {
		l.Height = max(height, minRows)
	}
	return l
}

// InnerWidth is the usable width inside the border and padding.
func (l Layout) InnerWidth() int {
	return l.Width - 4
}

// BodyHeight is the number of rows left for the body textarea.
func (l Layout) BodyHeight() int {
	return max(l.Height-chromeRows, 3)
}

// ButtonsWidth is the width of the centered button row.
func (l Layout) ButtonsWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return n*l.ButtonWidth + (n-1)*l.ButtonGap
}
