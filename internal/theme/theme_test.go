package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	t.Parallel()

	def := Default()

	require.Equal(t, Blue, def.Primary)
	require.Equal(t, Yellow, def.Secondary)
	require.Equal(t, Green, def.Success)
	require.Equal(t, Red, def.Error)
	require.Equal(t, Reset, def.Text)
	require.Equal(t, White, def.TextHighlight)
	require.Equal(t, Reset, def.Background)
	require.Equal(t, Reset, def.Border)
	require.Equal(t, DarkGray, def.Inactive)

	require.Equal(t, Gray, def.SyntaxHighlighting.Comment)
	require.Equal(t, Blue, def.SyntaxHighlighting.Builtin)
	require.Equal(t, Green, def.SyntaxHighlighting.Escape)
	require.Equal(t, Cyan, def.SyntaxHighlighting.Number)
	require.Equal(t, LightGreen, def.SyntaxHighlighting.String)
	require.Equal(t, Green, def.SyntaxHighlighting.Special)
}

func TestFromMapEmptyDocument(t *testing.T) {
	t.Parallel()

	got, err := FromMap(map[string]any{})
	require.NoError(t, err)
	require.Equal(t, Default(), got)
}

func TestFromMapPartialOverride(t *testing.T) {
	t.Parallel()

	got, err := FromMap(map[string]any{"primary": "green"})
	require.NoError(t, err)
	require.Equal(t, Green, got.Primary)

	// Every other field keeps its default.
	want := Default()
	want.Primary = Green
	require.Equal(t, want, got)
}

func TestFromMapNestedOverride(t *testing.T) {
	t.Parallel()

	got, err := FromMap(map[string]any{
		"syntax_highlighting": map[string]any{"number": "magenta"},
	})
	require.NoError(t, err)
	require.Equal(t, Magenta, got.SyntaxHighlighting.Number)
	require.Equal(t, Gray, got.SyntaxHighlighting.Comment)
	require.Equal(t, Default().Primary, got.Primary)
}

func TestFromMapUnknownTopLevelKey(t *testing.T) {
	t.Parallel()

	_, err := FromMap(map[string]any{"colour": "red"})
	require.Error(t, err)

	var schemaErr *SchemaViolationError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "colour", schemaErr.Key)
}

func TestFromMapUnknownNestedKey(t *testing.T) {
	t.Parallel()

	_, err := FromMap(map[string]any{
		"syntax_highlighting": map[string]any{"colour": "red"},
	})
	require.Error(t, err)

	var schemaErr *SchemaViolationError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "syntax_highlighting.colour", schemaErr.Key)
}

func TestFromMapUnsupportedColor(t *testing.T) {
	t.Parallel()

	_, err := FromMap(map[string]any{"primary": "blurple"})
	require.Error(t, err)

	var colorErr *UnsupportedColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "primary", colorErr.Field)
	require.Equal(t, "blurple", colorErr.Value)
}

func TestFromMapUnsupportedNestedColor(t *testing.T) {
	t.Parallel()

	_, err := FromMap(map[string]any{
		"syntax_highlighting": map[string]any{"string": true},
	})
	require.Error(t, err)

	var colorErr *UnsupportedColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "syntax_highlighting.string", colorErr.Field)
}

func TestFromMapIntegerIndex(t *testing.T) {
	t.Parallel()

	got, err := FromMap(map[string]any{"primary": 42})
	require.NoError(t, err)
	require.Equal(t, IndexedColor(42), got.Primary)

	_, err = FromMap(map[string]any{"primary": 300})
	require.Error(t, err)
}

func TestFromMapSyntaxMustBeMapping(t *testing.T) {
	t.Parallel()

	_, err := FromMap(map[string]any{"syntax_highlighting": "gray"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a mapping")
}
