package theme

import "fmt"

// SchemaViolationError reports an unrecognized key in a theme document.
// Typos must fail loudly rather than being silently ignored.
type SchemaViolationError struct {
	// Key is the dotted path of the offending key, e.g.
	// "syntax_highlighting.colour".
	Key string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("unknown theme key %q", e.Key)
}

// UnsupportedColorError reports a color literal that is neither a named
// color nor an accepted extended form.
type UnsupportedColorError struct {
	// Field is the dotted path of the field holding the value, when known.
	Field string
	Value string
}

func (e *UnsupportedColorError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("unsupported color %q for %s", e.Value, e.Field)
	}
	return fmt.Sprintf("unsupported color %q", e.Value)
}
