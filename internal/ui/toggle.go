package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Johannes-Berggren/repodash/internal/models"
)

// toggleItem is one button of the display mode toggle group.
type toggleItem struct {
	ID    string
	Label string
}

func toggleItems() []toggleItem {
	modes := models.DisplayModes()
	items := make([]toggleItem, len(modes))
	for i, m := range modes {
		items[i] = toggleItem{ID: string(m), Label: m.Label()}
	}
	return items
}

// renderToggleGroup draws the mode buttons side by side. The selected button
// is filled; while the group has focus the button under the cursor is
// underlined.
func renderToggleGroup(selected models.DisplayMode, cursor int, focused bool) string {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), true, false, true, true).
		BorderForeground(subtleColor)

	selectedStyle := base.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)

	items := toggleItems()
	buttons := make([]string, len(items))
	for i, item := range items {
		style := base
		if item.ID == string(selected) {
			style = selectedStyle
		}
		if focused && i == cursor {
			style = style.Underline(true)
		}
		if i == len(items)-1 {
			style = style.BorderRight(true)
		}
		buttons[i] = style.Render(item.Label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
