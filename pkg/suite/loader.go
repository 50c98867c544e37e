package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a suite definition from a YAML or JSON file,
// chosen by extension.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read suite file %s: %w", path, err,
		)
	}

	var s Suite

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	case ".json":
		err = json.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf(
			"unsupported suite file extension: %s", path,
		)
	}

	if err != nil {
		return nil, fmt.Errorf(
			"failed to parse suite from %s: %w", path, err,
		)
	}

	if s.Name == "" {
		s.Name = strings.TrimSuffix(
			filepath.Base(path), filepath.Ext(path),
		)
	}

	return &s, nil
}

// LoadDir loads all .json and .yaml/.yml suite files from a
// directory. It does not recurse into subdirectories.
func LoadDir(dir string) ([]*Suite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	var suites []*Suite

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		s, err := LoadFile(p)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to load %s: %w", p, err,
			)
		}

		suites = append(suites, s)
	}

	return suites, nil
}
