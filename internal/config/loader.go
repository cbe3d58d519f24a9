// Package config locates and loads theme documents from disk.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/tint/internal/logging"
	"github.com/opencode-ai/tint/internal/theme"
)

// ThemeFileNames are the file names probed in each search directory, in
// precedence order.
var ThemeFileNames = []string{"theme.yaml", "theme.yml", "theme.json"}

// LoadTheme reads a theme document from disk. The format is chosen by
// extension: .json is parsed as JSON, everything else as YAML. Schema
// violations and unsupported colors surface as the theme package's error
// types, wrapped with the file path.
func LoadTheme(path string) (theme.Theme, error) {
	if strings.TrimSpace(path) == "" {
		return theme.Theme{}, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}

	t, err := parseTheme(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return theme.Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return t, nil
}

// ThemeSearchPaths returns theme search directories in precedence order.
func ThemeSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".tint"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "tint"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "tint"))
	return paths
}

// LoadThemeFromSearchPaths loads the first theme file found on the search
// paths. When no file exists anywhere, the default theme is returned; a
// file that exists but fails to parse is a hard error, never silently
// skipped.
func LoadThemeFromSearchPaths(projectDir string) (theme.Theme, error) {
	logger := logging.Component("config")

	for _, dir := range ThemeSearchPaths(projectDir) {
		for _, name := range ThemeFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			logger.Debug().Str("path", path).Msg("loading theme file")
			return LoadTheme(path)
		}
	}

	logger.Debug().Msg("no theme file found, using defaults")
	return theme.Default(), nil
}

func parseTheme(data []byte, ext string) (theme.Theme, error) {
	doc := make(map[string]any)

	if ext == ".json" {
		if err := json.Unmarshal(data, &doc); err != nil {
			return theme.Theme{}, err
		}
		normalizeJSONNumbers(doc)
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return theme.Theme{}, err
		}
	}

	return theme.FromMap(doc)
}

// normalizeJSONNumbers rewrites float64 values produced by encoding/json
// into ints where they are integral, so JSON and YAML documents decode the
// same way.
func normalizeJSONNumbers(doc map[string]any) {
	for key, value := range doc {
		switch v := value.(type) {
		case float64:
			if v == float64(int(v)) {
				doc[key] = int(v)
			}
		case map[string]any:
			normalizeJSONNumbers(v)
		}
	}
}
