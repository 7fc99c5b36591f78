package feeders

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YamlFeeder reads a YAML file into a config struct. Keys absent from the
// file leave the corresponding fields untouched.
type YamlFeeder struct {
	Path string
}

// NewYamlFeeder creates a YamlFeeder for filePath.
func NewYamlFeeder(filePath string) YamlFeeder {
	return YamlFeeder{Path: filePath}
}

// Feed implements demokit.Feeder.
func (y YamlFeeder) Feed(target any) error {
	data, err := os.ReadFile(y.Path)
	if err != nil {
		return wrapFileReadError(y.Path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return wrapFileDecodeError("yaml", y.Path, err)
	}
	return nil
}
