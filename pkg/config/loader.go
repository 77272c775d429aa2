package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/stackb/statical/pkg/starlarkeval"
)

// LoadFile reads a settings file and returns the normalized config.  The
// format is chosen by extension: .star and .bzl files are evaluated as
// starlark and their top-level globals become the settings keys; .yaml,
// .yml and .json files are decoded as YAML.
func LoadFile(filename string) (*Config, error) {
	settings, err := ReadSettings(filename)
	if err != nil {
		return nil, err
	}
	cfg, err := FromMap(settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// LoadFiles loads each file in turn and merges the results.
func LoadFiles(filenames ...string) (*Config, error) {
	cfgs := make([]*Config, 0, len(filenames))
	for _, filename := range filenames {
		cfg, err := LoadFile(filename)
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	return Merge(cfgs...), nil
}

// ReadSettings reads the raw settings mapping of a file.
func ReadSettings(filename string) (map[string]any, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	switch ext := filepath.Ext(filename); ext {
	case ".star", ".bzl":
		return readStarlark(filename, data)
	case ".yaml", ".yml", ".json":
		return readYAML(filename, data)
	default:
		return nil, fmt.Errorf("%s: unknown config file extension %q", filename, ext)
	}
}

// Discover returns the sorted names of the files in fsys matching the
// doublestar pattern.
func Discover(fsys fs.FS, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("bad config glob pattern: %q", pattern)
	}
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

func readStarlark(filename string, data []byte) (map[string]any, error) {
	interpreter := starlarkeval.NewInterpreter(func(format string, args ...interface{}) {})
	if err := interpreter.Exec(filename, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	known := make(map[string]bool)
	for _, key := range Keys() {
		known[key] = true
	}
	settings := make(map[string]any)
	for _, key := range interpreter.Globals() {
		if !known[key] {
			continue
		}
		v, err := starlarkeval.ToGo(interpreter.GetGlobal(key))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, &InvalidConfigError{Key: key})
		}
		settings[key] = v
	}
	return settings, nil
}

func readYAML(filename string, data []byte) (map[string]any, error) {
	settings := make(map[string]any)
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return settings, nil
}
