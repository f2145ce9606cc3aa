package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Johannes-Berggren/repodash/internal/datatable"
	"github.com/Johannes-Berggren/repodash/internal/models"
)

var (
	accentColor = lipgloss.Color("cyan")
	subtleColor = lipgloss.Color("240")
	mutedColor  = lipgloss.Color("241")
	errorColor  = lipgloss.Color("196")
)

// cellPadding is the horizontal padding of header and body cells.
func cellPadding(mode models.DisplayMode) int {
	if mode.Compact() {
		return 1
	}
	return 2
}

// tableStyles derives the table styles for a display mode. The cursor row is
// only highlighted while the table has focus.
func tableStyles(mode models.DisplayMode, focused bool) datatable.Styles {
	pad := cellPadding(mode)

	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		Padding(0, pad)
	if mode.Borders() {
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(subtleColor)
	}
	if !mode.Compact() {
		s.Header = s.Header.MarginBottom(1)
	}

	s.Cell = lipgloss.NewStyle().Padding(0, pad)

	s.Selected = lipgloss.NewStyle()
	if focused {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)
	}
	return s
}

// containerStyle wraps the table. Borderless mode keeps a hidden border so the
// layout does not shift when switching modes.
func containerStyle(mode models.DisplayMode, focused bool) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !mode.Compact() {
		s = s.Padding(1, 1)
	}
	if !mode.Borders() {
		return s.Border(lipgloss.HiddenBorder())
	}

	borderColor := subtleColor
	if focused {
		borderColor = accentColor
	}
	return s.Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
}

func infoLine(info, pager string) string {
	infoStyle := lipgloss.NewStyle().Foreground(mutedColor)
	if pager == "" {
		return infoStyle.Render(info)
	}
	pagerStyle := lipgloss.NewStyle().Foreground(accentColor).MarginLeft(2)
	return infoStyle.Render(info) + pagerStyle.Render(pager)
}
