package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles of the status line and of command output.
type Theme struct {
	// Status line under the canvas
	StatusTitle     lipgloss.Style
	StatusText      lipgloss.Style
	StatusSeparator lipgloss.Style

	// Command output
	Header  lipgloss.Style
	Name    lipgloss.Style
	Path    lipgloss.Style
	Found   lipgloss.Style
	Missing lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return Theme{
		StatusTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		StatusText:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Name:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Found:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Missing: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a theme without colors.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.StatusTitle = lipgloss.NewStyle().Bold(true)
	theme.StatusText = lipgloss.NewStyle()
	theme.StatusSeparator = lipgloss.NewStyle()
	theme.Header = lipgloss.NewStyle().Bold(true)
	theme.Name = lipgloss.NewStyle()
	theme.Path = lipgloss.NewStyle()
	theme.Found = lipgloss.NewStyle()
	theme.Missing = lipgloss.NewStyle().Bold(true)
	theme.Muted = lipgloss.NewStyle()
	return theme
}
