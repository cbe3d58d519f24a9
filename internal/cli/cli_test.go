package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/tint/internal/styles"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCheckValidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primary: green\n"), 0o644))

	out, err := runCommand(t, "check", path)
	require.NoError(t, err)
	require.Contains(t, out, fmt.Sprintf("%d style slots", len(styles.Slots())))
}

func TestCheckUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0o644))

	_, err := runCommand(t, "check", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown theme key "colour"`)
}

func TestSchemaCommand(t *testing.T) {
	out, err := runCommand(t, "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	require.Contains(t, schema, "$defs")
}
