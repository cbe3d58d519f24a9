package theme

import "encoding/json"

// SchemaJSON returns a JSON Schema document describing the theme file
// format.
//
// The Color type is published as a closed enumeration of the named colors
// plus "reset", even though ParseColor accepts extended literals (hex RGB,
// ANSI-256 indexes) on top. The extended forms are rarely used and would
// make the schema much harder to read, so the schema intentionally
// advertises a subset of what the parser accepts. Keep it that way.
func SchemaJSON() ([]byte, error) {
	colorEnum := make([]string, 0, len(NamedColors)+1)
	for _, color := range NamedColors {
		colorEnum = append(colorEnum, color.String())
	}
	colorEnum = append(colorEnum, "reset")

	colorRef := map[string]any{"$ref": "#/$defs/color"}

	schema := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                "Theme",
		"description":          "Semantic colors from which the full style sheet is derived.",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"primary":        colorRef,
			"secondary":      colorRef,
			"success":        colorRef,
			"error":          colorRef,
			"text":           colorRef,
			"text_highlight": colorRef,
			"background":     colorRef,
			"border":         colorRef,
			"inactive":       colorRef,
			"syntax_highlighting": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"comment": colorRef,
					"builtin": colorRef,
					"escape":  colorRef,
					"number":  colorRef,
					"string":  colorRef,
					"special": colorRef,
				},
			},
		},
		"$defs": map[string]any{
			"color": map[string]any{
				"type": "string",
				"enum": colorEnum,
			},
		},
	}

	return json.MarshalIndent(schema, "", "  ")
}
