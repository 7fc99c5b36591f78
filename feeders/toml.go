package feeders

import (
	"os"

	"github.com/BurntSushi/toml"
)

// TomlFeeder reads a TOML file into a config struct.
type TomlFeeder struct {
	Path string
}

// NewTomlFeeder creates a TomlFeeder for filePath.
func NewTomlFeeder(filePath string) TomlFeeder {
	return TomlFeeder{Path: filePath}
}

// Feed implements demokit.Feeder.
func (t TomlFeeder) Feed(target any) error {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return wrapFileReadError(t.Path, err)
	}

	if _, err := toml.Decode(string(data), target); err != nil {
		return wrapFileDecodeError("toml", t.Path, err)
	}
	return nil
}
