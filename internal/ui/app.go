package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the root program model: header, dashboard and help footer.
type Model struct {
	width      int
	height     int
	controller *Controller
	dashboard  *DashboardView
	help       help.Model
	keys       keyMap
}

func NewModel(controller *Controller, opts DashboardOptions) Model {
	return Model{
		controller: controller,
		dashboard:  NewDashboardView(controller, opts),
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.dashboard.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return m, m.quit()
		case !m.dashboard.Typing() && key.Matches(msg, m.keys.Quit):
			return m, m.quit()
		case !m.dashboard.Typing() && key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	m.dashboard, cmd = m.dashboard.Update(msg)

	return m, cmd
}

// quit releases the table before the program exits.
func (m Model) quit() tea.Cmd {
	if m.controller.Mounted() {
		m.controller.Unmount()
	}
	return tea.Quit
}

func (m Model) View() string {
	if !m.controller.Mounted() && m.dashboard.err == nil {
		return "Loading..."
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.dashboard.View(),
		m.renderFooter(),
	)

	return content
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("170")).
		MarginRight(2)

	modeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("green")).
		Bold(true)

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	title := titleStyle.Render("🧙 repodash")
	status := "unmounted"
	if m.controller.Mounted() {
		info := m.controller.Info()
		status = fmt.Sprintf("%d of %d repositories", info.Filtered, info.Total)
	}
	modeInfo := modeStyle.Render(m.controller.DisplayMode().Label()) + " " + statusStyle.Render(fmt.Sprintf("(%s)", status))

	headerLine := lipgloss.JoinHorizontal(lipgloss.Top, title, modeInfo)
	divider := dividerStyle.Render(strings.Repeat("─", m.width))

	return lipgloss.JoinVertical(lipgloss.Left, headerLine, divider)
}

func (m Model) renderFooter() string {
	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	focusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	divider := dividerStyle.Render(strings.Repeat("─", m.width))
	focus := focusStyle.Render("focus: " + m.dashboard.focus.String())

	return lipgloss.JoinVertical(lipgloss.Left, divider, focus, m.help.View(m.keys))
}
