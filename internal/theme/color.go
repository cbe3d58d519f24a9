// Package theme defines the user-facing theme document and its color model.
package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type colorKind uint8

const (
	kindReset colorKind = iota
	kindNamed
	kindIndexed
	kindRGB
)

// Color is an immutable terminal color value: one of the 16 named ANSI
// colors, the reset sentinel (inherit the terminal default), or an extended
// literal (ANSI-256 index or RGB hex). The zero value is reset.
//
// Extended literals are accepted by ParseColor but deliberately left out of
// the published schema (see SchemaJSON).
type Color struct {
	kind  colorKind
	name  string
	index uint8
	hex   string
}

// Named colors and the reset sentinel.
var (
	Reset        = Color{}
	Black        = namedColor("black")
	Red          = namedColor("red")
	Green        = namedColor("green")
	Yellow       = namedColor("yellow")
	Blue         = namedColor("blue")
	Magenta      = namedColor("magenta")
	Cyan         = namedColor("cyan")
	Gray         = namedColor("gray")
	DarkGray     = namedColor("dark-gray")
	LightRed     = namedColor("light-red")
	LightGreen   = namedColor("light-green")
	LightYellow  = namedColor("light-yellow")
	LightBlue    = namedColor("light-blue")
	LightMagenta = namedColor("light-magenta")
	LightCyan    = namedColor("light-cyan")
	White        = namedColor("white")
)

// NamedColors lists the named colors advertised by the schema, in ANSI order.
var NamedColors = []Color{
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, Gray,
	DarkGray, LightRed, LightGreen, LightYellow, LightBlue,
	LightMagenta, LightCyan, White,
}

// ansiCode maps canonical color names to their ANSI palette index.
var ansiCode = map[string]uint8{
	"black":         0,
	"red":           1,
	"green":         2,
	"yellow":        3,
	"blue":          4,
	"magenta":       5,
	"cyan":          6,
	"gray":          7,
	"dark-gray":     8,
	"light-red":     9,
	"light-green":   10,
	"light-yellow":  11,
	"light-blue":    12,
	"light-magenta": 13,
	"light-cyan":    14,
	"white":         15,
}

// byNormalized maps squashed names (lowercase, separators stripped) to the
// canonical form, so "DarkGray", "dark_gray" and "dark-gray" all parse.
var byNormalized = func() map[string]string {
	m := make(map[string]string, len(ansiCode))
	for name := range ansiCode {
		m[strings.ReplaceAll(name, "-", "")] = name
	}
	return m
}()

func namedColor(name string) Color {
	return Color{kind: kindNamed, name: name}
}

// IndexedColor returns a color addressing the ANSI-256 palette directly.
func IndexedColor(index uint8) Color {
	return Color{kind: kindIndexed, index: index}
}

// ParseColor parses a color literal. It accepts the 16 named colors and
// "reset" (case-insensitive, with "-", "_" and spaces interchangeable),
// "#rgb"/"#rrggbb" hex literals, and decimal ANSI-256 indexes. Anything else
// fails with an *UnsupportedColorError.
func ParseColor(value string) (Color, error) {
	trimmed := strings.TrimSpace(value)
	squashed := strings.ToLower(trimmed)
	for _, sep := range []string{"-", "_", " "} {
		squashed = strings.ReplaceAll(squashed, sep, "")
	}

	if squashed == "reset" || squashed == "default" {
		return Reset, nil
	}
	if name, ok := byNormalized[squashed]; ok {
		return namedColor(name), nil
	}
	if strings.HasPrefix(trimmed, "#") {
		return parseHex(trimmed)
	}
	if index, err := strconv.ParseUint(trimmed, 10, 8); err == nil {
		return IndexedColor(uint8(index)), nil
	}

	return Color{}, &UnsupportedColorError{Value: value}
}

func parseHex(literal string) (Color, error) {
	digits := literal[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return Color{}, &UnsupportedColorError{Value: literal}
	}
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return Color{}, &UnsupportedColorError{Value: literal}
	}
	if len(digits) == 3 {
		digits = strings.Repeat(string(digits[0]), 2) +
			strings.Repeat(string(digits[1]), 2) +
			strings.Repeat(string(digits[2]), 2)
	}
	return Color{kind: kindRGB, hex: "#" + strings.ToLower(digits)}, nil
}

// IsReset reports whether the color is the reset sentinel.
func (c Color) IsReset() bool {
	return c.kind == kindReset
}

// String returns the canonical literal form of the color.
func (c Color) String() string {
	switch c.kind {
	case kindNamed:
		return c.name
	case kindIndexed:
		return strconv.Itoa(int(c.index))
	case kindRGB:
		return c.hex
	default:
		return "reset"
	}
}

// Terminal converts the color to the rendering layer's color primitive.
// Reset maps to lipgloss.NoColor, which leaves the terminal default in place.
func (c Color) Terminal() lipgloss.TerminalColor {
	switch c.kind {
	case kindNamed:
		return lipgloss.Color(strconv.Itoa(int(ansiCode[c.name])))
	case kindIndexed:
		return lipgloss.Color(strconv.Itoa(int(c.index)))
	case kindRGB:
		return lipgloss.Color(c.hex)
	default:
		return lipgloss.NoColor{}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// colorFromValue converts a raw document value into a Color. Strings go
// through ParseColor; bare integers are treated as ANSI-256 indexes, which
// matches how YAML decodes an unquoted numeric literal.
func colorFromValue(field string, value any) (Color, error) {
	switch v := value.(type) {
	case string:
		color, err := ParseColor(v)
		if err != nil {
			var unsupported *UnsupportedColorError
			if errors.As(err, &unsupported) {
				unsupported.Field = field
			}
			return Color{}, err
		}
		return color, nil
	case int:
		if v < 0 || v > 255 {
			return Color{}, &UnsupportedColorError{Field: field, Value: fmt.Sprintf("%d", v)}
		}
		return IndexedColor(uint8(v)), nil
	default:
		return Color{}, &UnsupportedColorError{Field: field, Value: fmt.Sprintf("%v", value)}
	}
}
