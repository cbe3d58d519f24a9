package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/tint/internal/theme"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadThemeYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "theme.yaml", `
primary: green
border: "#222222"
syntax_highlighting:
  number: 202
`)

	got, err := LoadTheme(path)
	require.NoError(t, err)
	require.Equal(t, theme.Green, got.Primary)
	require.Equal(t, theme.IndexedColor(202), got.SyntaxHighlighting.Number)
	require.Equal(t, "#222222", got.Border.String())

	// Untouched fields keep their defaults.
	require.Equal(t, theme.Yellow, got.Secondary)
	require.Equal(t, theme.Gray, got.SyntaxHighlighting.Comment)
}

func TestLoadThemeJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "theme.json",
		`{"primary": "light-magenta", "syntax_highlighting": {"string": 120}}`)

	got, err := LoadTheme(path)
	require.NoError(t, err)
	require.Equal(t, theme.LightMagenta, got.Primary)
	require.Equal(t, theme.IndexedColor(120), got.SyntaxHighlighting.String)
}

func TestLoadThemeUnknownKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "theme.yaml", "colour: red\n")

	_, err := LoadTheme(path)
	require.Error(t, err)

	var schemaErr *theme.SchemaViolationError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "colour", schemaErr.Key)
	require.Contains(t, err.Error(), path)
}

func TestLoadThemeUnsupportedColor(t *testing.T) {
	path := writeFile(t, t.TempDir(), "theme.yaml", "primary: blurple\n")

	_, err := LoadTheme(path)
	var colorErr *theme.UnsupportedColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "blurple", colorErr.Value)
}

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	_, err = LoadTheme("  ")
	require.Error(t, err)
}

func TestThemeSearchPathOrder(t *testing.T) {
	paths := ThemeSearchPaths("/proj")
	require.NotEmpty(t, paths)
	require.Equal(t, filepath.Join("/proj", ".tint"), paths[0])
}

func TestLoadThemeFromSearchPaths(t *testing.T) {
	// Point HOME at an empty directory so a developer's own theme file
	// cannot leak into the test.
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".tint"), 0o755))
	writeFile(t, filepath.Join(project, ".tint"), "theme.yaml", "secondary: cyan\n")

	got, err := LoadThemeFromSearchPaths(project)
	require.NoError(t, err)
	require.Equal(t, theme.Cyan, got.Secondary)
}

func TestLoadThemeFromSearchPathsDefaultFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := LoadThemeFromSearchPaths(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, theme.Default(), got)
}

func TestLoadThemeFromSearchPathsBrokenFileIsHardError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".tint"), 0o755))
	writeFile(t, filepath.Join(project, ".tint"), "theme.yaml", "colour: red\n")

	_, err := LoadThemeFromSearchPaths(project)
	require.Error(t, err)
}
