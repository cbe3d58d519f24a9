package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/tint/internal/theme"
)

// Slot names one derived style in the sheet. The rendering layer can address
// styles either through the typed bundles on StyleSheet or by slot name.
type Slot string

// All derived style slots.
const (
	SlotFormTitle          Slot = "form.title"
	SlotFormTitleHighlight Slot = "form.title_highlight"

	SlotListHighlight         Slot = "list.highlight"
	SlotListHighlightInactive Slot = "list.highlight_inactive"
	SlotListDisabled          Slot = "list.disabled"
	SlotListItem              Slot = "list.item"

	SlotMenuBorder Slot = "menu.border"
	SlotMenuNormal Slot = "menu.normal"

	SlotModalBorder Slot = "modal.border"
	SlotModalNormal Slot = "modal.normal"

	SlotPaneBorder        Slot = "pane.border"
	SlotPaneBorderFocused Slot = "pane.border_focused"
	SlotPaneGeneric       Slot = "pane.generic"

	SlotStatusSuccess Slot = "status.success"
	SlotStatusError   Slot = "status.error"

	SlotTabDisabled  Slot = "tab.disabled"
	SlotTabHighlight Slot = "tab.highlight"

	SlotTableHeader    Slot = "table.header"
	SlotTableText      Slot = "table.text"
	SlotTableAlt       Slot = "table.alt"
	SlotTableDisabled  Slot = "table.disabled"
	SlotTableHighlight Slot = "table.highlight"
	SlotTableTitle     Slot = "table.title"

	SlotPreviewText  Slot = "preview.text"
	SlotPreviewError Slot = "preview.error"

	SlotTextHighlight Slot = "text.highlight"
	SlotTextHint      Slot = "text.hint"
	SlotTextPrimary   Slot = "text.primary"
	SlotTextEdited    Slot = "text.edited"
	SlotTextError     Slot = "text.error"
	SlotTextTitle     Slot = "text.title"

	SlotTextBoxText        Slot = "text_box.text"
	SlotTextBoxCursor      Slot = "text_box.cursor"
	SlotTextBoxPlaceholder Slot = "text_box.placeholder"
	SlotTextBoxInvalid     Slot = "text_box.invalid"

	SlotTextWindowGutter Slot = "text_window.gutter"

	SlotSyntaxComment Slot = "syntax.comment"
	SlotSyntaxBuiltin Slot = "syntax.builtin"
	SlotSyntaxEscape  Slot = "syntax.escape"
	SlotSyntaxNumber  Slot = "syntax.number"
	SlotSyntaxString  Slot = "syntax.string"
	SlotSyntaxSpecial Slot = "syntax.special"
)

// role identifies a theme color referenced by a rule.
type role uint8

const (
	roleNone role = iota
	rolePrimary
	roleSecondary
	roleSuccess
	roleError
	roleText
	roleTextHighlight
	roleBackground
	roleBorder
	roleInactive
	roleSyntaxComment
	roleSyntaxBuiltin
	roleSyntaxEscape
	roleSyntaxNumber
	roleSyntaxString
	roleSyntaxSpecial
)

// resolve returns the theme color backing a role. roleNone must not be
// resolved; rules use it only to mean "leave this channel unset".
func (r role) resolve(t theme.Theme) theme.Color {
	switch r {
	case rolePrimary:
		return t.Primary
	case roleSecondary:
		return t.Secondary
	case roleSuccess:
		return t.Success
	case roleError:
		return t.Error
	case roleText:
		return t.Text
	case roleTextHighlight:
		return t.TextHighlight
	case roleBackground:
		return t.Background
	case roleBorder:
		return t.Border
	case roleInactive:
		return t.Inactive
	case roleSyntaxComment:
		return t.SyntaxHighlighting.Comment
	case roleSyntaxBuiltin:
		return t.SyntaxHighlighting.Builtin
	case roleSyntaxEscape:
		return t.SyntaxHighlighting.Escape
	case roleSyntaxNumber:
		return t.SyntaxHighlighting.Number
	case roleSyntaxString:
		return t.SyntaxHighlighting.String
	case roleSyntaxSpecial:
		return t.SyntaxHighlighting.Special
	default:
		return theme.Reset
	}
}

// attrMask is a set of text emphasis flags.
type attrMask uint8

const (
	attrBold attrMask = 1 << iota
	attrUnderline
	attrItalic
)

// rule describes how one slot is derived from the theme: a foreground role,
// an optional background role, and a fixed emphasis set.
type rule struct {
	fg    role
	bg    role
	attrs attrMask
}

// rules is the complete slot derivation table. Every slot the rendering
// layer consumes has exactly one entry; package tests enforce that the table
// and the typed sheet cover the same slots.
var rules = map[Slot]rule{
	SlotFormTitle:          {fg: roleText, attrs: attrUnderline},
	SlotFormTitleHighlight: {fg: rolePrimary, attrs: attrBold | attrUnderline},

	SlotListHighlight:         {fg: roleTextHighlight, bg: rolePrimary, attrs: attrBold},
	SlotListHighlightInactive: {fg: roleTextHighlight, bg: roleInactive, attrs: attrBold},
	SlotListDisabled:          {fg: roleInactive, bg: roleBackground},
	SlotListItem:              {fg: roleText},

	SlotMenuBorder: {fg: rolePrimary, bg: roleBackground},
	SlotMenuNormal: {fg: roleText, bg: roleBackground},

	SlotModalBorder: {fg: rolePrimary, bg: roleBackground},
	SlotModalNormal: {fg: roleText, bg: roleBackground},

	SlotPaneBorder:        {fg: roleBorder},
	SlotPaneBorderFocused: {fg: rolePrimary, attrs: attrBold},
	SlotPaneGeneric:       {fg: roleText, bg: roleBackground},

	SlotStatusSuccess: {fg: roleTextHighlight, bg: roleSuccess},
	SlotStatusError:   {fg: roleTextHighlight, bg: roleError},

	SlotTabDisabled:  {fg: roleInactive},
	SlotTabHighlight: {fg: rolePrimary, attrs: attrBold | attrUnderline},

	SlotTableHeader:    {fg: roleText, attrs: attrBold | attrUnderline},
	SlotTableText:      {fg: roleText},
	SlotTableAlt:       {fg: roleTextHighlight, bg: roleInactive},
	SlotTableDisabled:  {fg: roleInactive},
	SlotTableHighlight: {fg: roleTextHighlight, bg: rolePrimary, attrs: attrBold | attrUnderline},
	SlotTableTitle:     {fg: roleText, attrs: attrBold},

	SlotPreviewText:  {fg: roleSecondary, attrs: attrUnderline},
	SlotPreviewError: {fg: roleTextHighlight, bg: roleError},

	SlotTextHighlight: {fg: roleTextHighlight, bg: rolePrimary},
	SlotTextHint:      {fg: roleInactive},
	SlotTextPrimary:   {fg: rolePrimary},
	SlotTextEdited:    {fg: roleText, attrs: attrItalic},
	SlotTextError:     {fg: roleError},
	SlotTextTitle:     {fg: roleText, attrs: attrBold},

	SlotTextBoxText:        {fg: roleTextHighlight, bg: roleInactive},
	SlotTextBoxCursor:      {fg: roleInactive, bg: roleTextHighlight},
	SlotTextBoxPlaceholder: {fg: roleText},
	SlotTextBoxInvalid:     {fg: roleTextHighlight, bg: roleError},

	SlotTextWindowGutter: {fg: roleInactive},

	SlotSyntaxComment: {fg: roleSyntaxComment},
	SlotSyntaxBuiltin: {fg: roleSyntaxBuiltin},
	SlotSyntaxEscape:  {fg: roleSyntaxEscape},
	SlotSyntaxNumber:  {fg: roleSyntaxNumber},
	SlotSyntaxString:  {fg: roleSyntaxString},
	SlotSyntaxSpecial: {fg: roleSyntaxSpecial},
}

// Slots returns every known slot name in sorted order.
func Slots() []Slot {
	slots := make([]Slot, 0, len(rules))
	for slot := range rules {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// compile turns one rule into a concrete style for the given theme.
func (r rule) compile(t theme.Theme) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(r.fg.resolve(t).Terminal())
	if r.bg != roleNone {
		style = style.Background(r.bg.resolve(t).Terminal())
	}
	if r.attrs&attrBold != 0 {
		style = style.Bold(true)
	}
	if r.attrs&attrUnderline != 0 {
		style = style.Underline(true)
	}
	if r.attrs&attrItalic != 0 {
		style = style.Italic(true)
	}
	return style
}
