package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const paneWidth = 32

func (m model) viewLines() []string {
	lines := []string{
		m.sheet.Text.Title.Render("tint style preview"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.listPane(), " ", m.tablePane()),
		"",
		m.tabLine(),
		m.statusLine(),
		m.textLine(),
		m.textBoxLine(),
		m.syntaxLine(),
		"",
		m.sheet.Text.Hint.Render("tab: move focus | r: re-derive | q: quit"),
	}
	return lines
}

// pane draws content inside the pane chrome, picking the border for the
// current focus state at render time.
func (m model) pane(index int, content string) string {
	kind, borderStyle := m.sheet.Pane.Border(m.focusPane == index)
	frame := lipgloss.NewStyle().
		Border(kind).
		BorderForeground(borderStyle.GetForeground()).
		Padding(0, 1).
		Width(paneWidth)
	return frame.Render(content)
}

func (m model) listPane() string {
	focused := m.focusPane == 0
	selected := m.sheet.List.HighlightInactive
	if focused {
		selected = m.sheet.List.Highlight
	}

	rows := []string{
		m.sheet.Form.TitleHighlight.Render("Requests"),
		selected.Render("> login"),
		m.sheet.List.Item.Render("  list users"),
		m.sheet.List.Item.Render("  create user"),
		m.sheet.List.Disabled.Render("  delete user (disabled)"),
	}
	return m.pane(0, joinLines(rows))
}

func (m model) tablePane() string {
	rows := []string{
		m.sheet.Table.Title.Render("History"),
		m.sheet.Table.Header.Render("method  status  time"),
		m.sheet.Table.Text.Render("GET     200     120ms"),
		m.sheet.Table.Alt.Render("POST    201     340ms"),
		m.sheet.Table.Highlight.Render("GET     404     80ms"),
		m.sheet.Table.Disabled.Render("PUT     —       pending"),
	}
	return m.pane(1, joinLines(rows))
}

func (m model) tabLine() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.sheet.Tab.Highlight.Render("Body"), "  ",
		m.sheet.Tab.Disabled.Render("Headers"), "  ",
		m.sheet.Tab.Disabled.Render("Query"),
	)
}

func (m model) statusLine() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.sheet.Status.Success.Render(" 200 OK "), "  ",
		m.sheet.Status.Error.Render(" 404 Not Found "), "  ",
		m.sheet.Preview.Text.Render("{{host}}/users"), "  ",
		m.sheet.Preview.Error.Render(" render error "),
	)
}

func (m model) textLine() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.sheet.Text.Primary.Render("primary"), " ",
		m.sheet.Text.Highlight.Render("highlight"), " ",
		m.sheet.Text.Edited.Render("edited"), " ",
		m.sheet.Text.Error.Render("error"), " ",
		m.sheet.Text.Hint.Render("hint"),
	)
}

func (m model) textBoxLine() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.sheet.TextBox.Text.Render("https://example.test"),
		m.sheet.TextBox.Cursor.Render(" "), "  ",
		m.sheet.TextBox.Placeholder.Render("enter a URL..."), "  ",
		m.sheet.TextBox.Invalid.Render("not a URL"),
	)
}

func (m model) syntaxLine() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.sheet.TextWindow.Gutter.Render("12 "),
		m.sheet.Syntax.Comment.Render("# fetch "),
		m.sheet.Syntax.Builtin.Render("GET "),
		m.sheet.Syntax.String.Render("\"/users/"),
		m.sheet.Syntax.Escape.Render("\\u007b"),
		m.sheet.Syntax.String.Render("\""),
		m.sheet.Syntax.Special.Render(" ?page="),
		m.sheet.Syntax.Number.Render("2"),
	)
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
