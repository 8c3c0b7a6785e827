package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the TUI.
type Styles struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Task     lipgloss.Style
	Done     lipgloss.Style
	ID       lipgloss.Style
	Status   lipgloss.Style
	ErrorMsg lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default styling.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("13")).
			Bold(true),
		Task: lipgloss.NewStyle(),
		Done: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Strikethrough(true),
		ID: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1),
	}
}
