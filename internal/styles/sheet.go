// Package styles derives the complete per-component style sheet from a
// theme. The theme supplies a handful of semantic colors; everything else —
// which slot uses which color, emphasis, border shapes — is fixed here, so
// that every element the rendering layer can draw has exactly one
// theme-derived style.
//
// Derivation is pure: the same theme always produces the same sheet, and a
// derived sheet holds no reference back to its theme. On a theme change the
// caller derives a fresh sheet and swaps it in whole.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/tint/internal/theme"
)

// StyleSheet is the full set of concrete styles, grouped by component. It is
// treated as read-only by all consumers once derived.
type StyleSheet struct {
	Form       FormStyles
	List       ListStyles
	Menu       MenuStyles
	Modal      ModalStyles
	Pane       PaneStyles
	Status     StatusStyles
	Tab        TabStyles
	Table      TableStyles
	Preview    PreviewStyles
	Text       TextStyles
	TextBox    TextBoxStyles
	TextWindow TextWindowStyles
	Syntax     SyntaxStyles

	bySlot map[Slot]lipgloss.Style
}

// BorderStyles pairs a border line set with the style its lines are drawn in.
type BorderStyles struct {
	Kind  lipgloss.Border
	Style lipgloss.Style
}

// FormStyles styles input form fields.
type FormStyles struct {
	// Title styles an input field title when not focused.
	Title lipgloss.Style
	// TitleHighlight styles an input field title when focused.
	TitleHighlight lipgloss.Style
}

// ListStyles styles list components.
type ListStyles struct {
	// Highlight styles the selected item of a focused list.
	Highlight lipgloss.Style
	// HighlightInactive styles the selected item of an unfocused list.
	HighlightInactive lipgloss.Style
	Disabled          lipgloss.Style
	Item              lipgloss.Style
}

// MenuStyles styles the action menu.
type MenuStyles struct {
	Border BorderStyles
	Normal lipgloss.Style
}

// ModalStyles styles modal dialogs.
type ModalStyles struct {
	Border BorderStyles
	Normal lipgloss.Style
}

// PaneStyles styles pane chrome. Which border a pane gets depends on focus,
// which is only known at render time, so panes carry both variants and the
// Border method picks one.
type PaneStyles struct {
	Focused BorderStyles
	Blurred BorderStyles
	Generic lipgloss.Style
}

// Border returns the border kind and style for a pane given its focus state.
func (p PaneStyles) Border(hasFocus bool) (lipgloss.Border, lipgloss.Style) {
	if hasFocus {
		return p.Focused.Kind, p.Focused.Style
	}
	return p.Blurred.Kind, p.Blurred.Style
}

// StatusStyles styles status-code indicators.
type StatusStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
}

// TabStyles styles tab bars.
type TabStyles struct {
	Disabled  lipgloss.Style
	Highlight lipgloss.Style
}

// TableStyles styles table components.
type TableStyles struct {
	Header    lipgloss.Style
	Text      lipgloss.Style
	Alt       lipgloss.Style
	Disabled  lipgloss.Style
	Highlight lipgloss.Style
	Title     lipgloss.Style
	// Background is the raw background color, for consumers that fill
	// regions directly rather than rendering through a style.
	Background lipgloss.TerminalColor
}

// PreviewStyles styles rendered value previews.
type PreviewStyles struct {
	Text  lipgloss.Style
	Error lipgloss.Style
}

// TextStyles are the generic text variants.
type TextStyles struct {
	// Highlight styles text needing visual separation from its surroundings.
	Highlight lipgloss.Style
	// Hint styles de-emphasized informational text.
	Hint    lipgloss.Style
	Primary lipgloss.Style
	// Edited styles values changed in the current session.
	Edited lipgloss.Style
	Error  lipgloss.Style
	Title  lipgloss.Style
}

// TextBoxStyles styles single-line text inputs.
type TextBoxStyles struct {
	Text        lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style
	Invalid     lipgloss.Style
}

// TextWindowStyles styles scrollable text areas.
type TextWindowStyles struct {
	// Gutter styles line numbers alongside large text areas.
	Gutter lipgloss.Style
}

// SyntaxStyles carries the syntax-highlighting styles, foreground-only and
// one-to-one with the theme's syntax colors.
type SyntaxStyles struct {
	Comment lipgloss.Style
	Builtin lipgloss.Style
	Escape  lipgloss.Style
	Number  lipgloss.Style
	String  lipgloss.Style
	Special lipgloss.Style
}

// Derive expands a theme into the full style sheet. It is total: every valid
// theme produces a sheet with every slot populated, and there is no error
// path because validation already happened when the theme was constructed.
func Derive(t theme.Theme) *StyleSheet {
	bySlot := make(map[Slot]lipgloss.Style, len(rules))
	for slot, r := range rules {
		bySlot[slot] = r.compile(t)
	}

	return &StyleSheet{
		Form: FormStyles{
			Title:          bySlot[SlotFormTitle],
			TitleHighlight: bySlot[SlotFormTitleHighlight],
		},
		List: ListStyles{
			Highlight:         bySlot[SlotListHighlight],
			HighlightInactive: bySlot[SlotListHighlightInactive],
			Disabled:          bySlot[SlotListDisabled],
			Item:              bySlot[SlotListItem],
		},
		Menu: MenuStyles{
			Border: BorderStyles{Kind: lipgloss.RoundedBorder(), Style: bySlot[SlotMenuBorder]},
			Normal: bySlot[SlotMenuNormal],
		},
		Modal: ModalStyles{
			Border: BorderStyles{Kind: lipgloss.DoubleBorder(), Style: bySlot[SlotModalBorder]},
			Normal: bySlot[SlotModalNormal],
		},
		Pane: PaneStyles{
			Focused: BorderStyles{Kind: lipgloss.DoubleBorder(), Style: bySlot[SlotPaneBorderFocused]},
			Blurred: BorderStyles{Kind: lipgloss.RoundedBorder(), Style: bySlot[SlotPaneBorder]},
			Generic: bySlot[SlotPaneGeneric],
		},
		Status: StatusStyles{
			Success: bySlot[SlotStatusSuccess],
			Error:   bySlot[SlotStatusError],
		},
		Tab: TabStyles{
			Disabled:  bySlot[SlotTabDisabled],
			Highlight: bySlot[SlotTabHighlight],
		},
		Table: TableStyles{
			Header:     bySlot[SlotTableHeader],
			Text:       bySlot[SlotTableText],
			Alt:        bySlot[SlotTableAlt],
			Disabled:   bySlot[SlotTableDisabled],
			Highlight:  bySlot[SlotTableHighlight],
			Title:      bySlot[SlotTableTitle],
			Background: t.Background.Terminal(),
		},
		Preview: PreviewStyles{
			Text:  bySlot[SlotPreviewText],
			Error: bySlot[SlotPreviewError],
		},
		Text: TextStyles{
			Highlight: bySlot[SlotTextHighlight],
			Hint:      bySlot[SlotTextHint],
			Primary:   bySlot[SlotTextPrimary],
			Edited:    bySlot[SlotTextEdited],
			Error:     bySlot[SlotTextError],
			Title:     bySlot[SlotTextTitle],
		},
		TextBox: TextBoxStyles{
			Text:        bySlot[SlotTextBoxText],
			Cursor:      bySlot[SlotTextBoxCursor],
			Placeholder: bySlot[SlotTextBoxPlaceholder],
			Invalid:     bySlot[SlotTextBoxInvalid],
		},
		TextWindow: TextWindowStyles{
			Gutter: bySlot[SlotTextWindowGutter],
		},
		Syntax: SyntaxStyles{
			Comment: bySlot[SlotSyntaxComment],
			Builtin: bySlot[SlotSyntaxBuiltin],
			Escape:  bySlot[SlotSyntaxEscape],
			Number:  bySlot[SlotSyntaxNumber],
			String:  bySlot[SlotSyntaxString],
			Special: bySlot[SlotSyntaxSpecial],
		},
		bySlot: bySlot,
	}
}

// Slot looks up a derived style by slot name. The second return is false for
// unknown slots.
func (s *StyleSheet) Slot(slot Slot) (lipgloss.Style, bool) {
	style, ok := s.bySlot[slot]
	return style, ok
}

// DefaultSheet derives the sheet for the default theme.
func DefaultSheet() *StyleSheet {
	return Derive(theme.Default())
}
