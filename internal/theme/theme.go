package theme

import (
	"fmt"
	"sort"
)

// Theme holds the user-configurable semantic colors. The full style sheet is
// generated from these few values; see the styles package.
type Theme struct {
	// Primary accents the selected pane and highlighted content.
	Primary Color `yaml:"primary" json:"primary"`
	// Secondary accents supporting content such as previews.
	Secondary Color `yaml:"secondary" json:"secondary"`
	// Success marks success indicators (e.g. 2xx status codes).
	Success Color `yaml:"success" json:"success"`
	// Error marks failure indicators (e.g. 4xx status codes).
	Error Color `yaml:"error" json:"error"`

	Text          Color `yaml:"text" json:"text"`
	TextHighlight Color `yaml:"text_highlight" json:"text_highlight"`
	Background    Color `yaml:"background" json:"background"`
	Border        Color `yaml:"border" json:"border"`
	Inactive      Color `yaml:"inactive" json:"inactive"`

	SyntaxHighlighting SyntaxHighlighting `yaml:"syntax_highlighting" json:"syntax_highlighting"`
}

// SyntaxHighlighting holds the per-token colors used when highlighting
// source snippets.
type SyntaxHighlighting struct {
	Comment Color `yaml:"comment" json:"comment"`
	Builtin Color `yaml:"builtin" json:"builtin"`
	Escape  Color `yaml:"escape" json:"escape"`
	Number  Color `yaml:"number" json:"number"`
	String  Color `yaml:"string" json:"string"`
	Special Color `yaml:"special" json:"special"`
}

// Default returns the canonical default theme. Every field is populated; a
// Theme is never partially constructed.
func Default() Theme {
	return Theme{
		Primary:       Blue,
		Secondary:     Yellow,
		Success:       Green,
		Error:         Red,
		Text:          Reset,
		TextHighlight: White,
		Background:    Reset,
		Border:        Reset,
		Inactive:      DarkGray,
		SyntaxHighlighting: SyntaxHighlighting{
			Comment: Gray,
			Builtin: Blue,
			Escape:  Green,
			Number:  Cyan,
			String:  LightGreen,
			Special: Green,
		},
	}
}

// syntaxKey is the document key holding the nested syntax colors.
const syntaxKey = "syntax_highlighting"

var themeFields = map[string]func(*Theme) *Color{
	"primary":        func(t *Theme) *Color { return &t.Primary },
	"secondary":      func(t *Theme) *Color { return &t.Secondary },
	"success":        func(t *Theme) *Color { return &t.Success },
	"error":          func(t *Theme) *Color { return &t.Error },
	"text":           func(t *Theme) *Color { return &t.Text },
	"text_highlight": func(t *Theme) *Color { return &t.TextHighlight },
	"background":     func(t *Theme) *Color { return &t.Background },
	"border":         func(t *Theme) *Color { return &t.Border },
	"inactive":       func(t *Theme) *Color { return &t.Inactive },
}

var syntaxFields = map[string]func(*SyntaxHighlighting) *Color{
	"comment": func(s *SyntaxHighlighting) *Color { return &s.Comment },
	"builtin": func(s *SyntaxHighlighting) *Color { return &s.Builtin },
	"escape":  func(s *SyntaxHighlighting) *Color { return &s.Escape },
	"number":  func(s *SyntaxHighlighting) *Color { return &s.Number },
	"string":  func(s *SyntaxHighlighting) *Color { return &s.String },
	"special": func(s *SyntaxHighlighting) *Color { return &s.Special },
}

// FromMap builds a Theme from a raw key-value document, as produced by a
// YAML or JSON unmarshal. Missing keys keep their default value, so partial
// documents are the normal case. Unknown keys at either level fail with a
// *SchemaViolationError; unparseable color values fail with an
// *UnsupportedColorError. The first offending key in sorted order wins.
func FromMap(doc map[string]any) (Theme, error) {
	t := Default()

	for _, key := range sortedKeys(doc) {
		value := doc[key]
		if key == syntaxKey {
			if err := t.SyntaxHighlighting.fromValue(value); err != nil {
				return Theme{}, err
			}
			continue
		}

		field, ok := themeFields[key]
		if !ok {
			return Theme{}, &SchemaViolationError{Key: key}
		}
		color, err := colorFromValue(key, value)
		if err != nil {
			return Theme{}, err
		}
		*field(&t) = color
	}

	return t, nil
}

func (s *SyntaxHighlighting) fromValue(value any) error {
	nested, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("theme key %q must be a mapping, got %T", syntaxKey, value)
	}

	for _, key := range sortedKeys(nested) {
		path := syntaxKey + "." + key
		field, ok := syntaxFields[key]
		if !ok {
			return &SchemaViolationError{Key: path}
		}
		color, err := colorFromValue(path, nested[key])
		if err != nil {
			return err
		}
		*field(s) = color
	}

	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
