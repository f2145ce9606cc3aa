package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchInput is the single-line query field above the table.
type SearchInput struct {
	textInput textinput.Model
	width     int
}

func NewSearchInput(placeholder string) *SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Width = 40

	return &SearchInput{
		textInput: ti,
	}
}

func (s *SearchInput) Focus() tea.Cmd {
	return s.textInput.Focus()
}

func (s *SearchInput) Blur() {
	s.textInput.Blur()
}

func (s *SearchInput) Focused() bool {
	return s.textInput.Focused()
}

func (s *SearchInput) Value() string {
	return s.textInput.Value()
}

func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			s.textInput.Reset()
			return s, nil
		}

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.textInput.Width = max(20, min(60, msg.Width-10))
	}

	s.textInput, cmd = s.textInput.Update(msg)
	return s, cmd
}

func (s *SearchInput) View() string {
	borderColor := subtleColor
	if s.Focused() {
		borderColor = accentColor
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(s.textInput.View())
}
