package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce/internal/input"
)

// frameMsg carries a composed frame to the program.
type frameMsg string

// Model is the Bubble Tea model showing the canvas. It owns no state of the
// session: frames arrive as messages and key presses leave through the
// key mapper.
type Model struct {
	title  string
	frame  string
	status string
	keys   *KeyMapper
}

// NewModel creates the window model.
func NewModel(title string, keys *KeyMapper, theme Theme) Model {
	return Model{
		title:  title,
		keys:   keys,
		status: statusLine(title, theme),
	}
}

// statusLine renders the title and the short key help.
func statusLine(title string, theme Theme) string {
	h := help.New()
	h.Styles.ShortKey = theme.StatusText.Bold(true)
	h.Styles.ShortDesc = theme.StatusText
	h.Styles.ShortSeparator = theme.StatusSeparator
	return theme.StatusTitle.Render(title) +
		theme.StatusSeparator.Render(" │ ") +
		h.ShortHelpView(input.DefaultKeyMap().ShortHelp())
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys.Press(msg)

	case frameMsg:
		m.frame = string(msg)
	}

	return m, nil
}

// View renders the latest frame and the status line.
func (m Model) View() string {
	return m.frame + "\n" + m.status
}
