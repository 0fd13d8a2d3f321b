package tips

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog file. Files ending in .yaml or .yml are parsed as YAML,
// anything else as JSON. Both must hold an object of mood -> list of tips.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tips file: %w", err)
	}

	entries, err := parse(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tips file %s: %w", path, err)
	}

	return New(entries), nil
}

// LoadOrEmpty is Load, except a failed read yields an empty catalog alongside
// the error. The returned catalog is never nil.
func LoadOrEmpty(path string) (*Catalog, error) {
	c, err := Load(path)
	if err != nil {
		return Empty(), err
	}
	return c, nil
}

func parse(path string, data []byte) (map[string][]string, error) {
	var entries map[string][]string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
	}

	return entries, nil
}
