// Package tui implements the tint style preview program.
//
// The preview renders a sample of every component bundle in a derived style
// sheet so a theme author can see the effect of their document at a glance.
// Focus moves between the two sample panes, exercising the render-time
// border decision exactly the way a real client would.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/tint/internal/styles"
	"github.com/opencode-ai/tint/internal/theme"
)

// Run launches the preview program for a theme.
func Run(t theme.Theme) error {
	program := tea.NewProgram(initialModel(t), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	width  int
	height int

	theme theme.Theme
	sheet *styles.StyleSheet

	// focusPane indexes the pane holding focus: 0 = list, 1 = table.
	focusPane int
}

const (
	minWidth  = 70
	minHeight = 20
)

func initialModel(t theme.Theme) model {
	return model{
		theme: t,
		sheet: styles.Derive(t),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.focusPane = (m.focusPane + 1) % 2
		case "r":
			// Re-derive and swap the sheet whole, so no consumer can see a
			// half-updated sheet.
			m.sheet = styles.Derive(m.theme)
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}
	return fmt.Sprintf("%s\n", joinLines(m.viewLines()))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.sheet.Text.Error.Render(message),
		m.sheet.Text.Hint.Render(hint),
		m.sheet.Text.Hint.Render("Press q to quit."),
	}
}
