// Package feeders provides configuration feeders for reading settings from
// YAML, TOML and JSON files and from prefixed environment variables.
package feeders

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileFeeder is the common shape of the file-backed feeders.
type FileFeeder interface {
	Feed(target any) error
}

// ForFile picks a feeder from the file extension: .yaml/.yml, .toml or .json.
func ForFile(path string) (FileFeeder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYamlFeeder(path), nil
	case ".toml":
		return NewTomlFeeder(path), nil
	case ".json":
		return NewJSONFeeder(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}
