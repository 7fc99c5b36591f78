package feeders

import (
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONFeeder reads a JSON file into a config struct using the `json` tags,
// falling back to exported field names.
type JSONFeeder struct {
	Path string
}

// NewJSONFeeder creates a JSONFeeder for filePath.
func NewJSONFeeder(filePath string) JSONFeeder {
	return JSONFeeder{Path: filePath}
}

// Feed implements demokit.Feeder.
func (j JSONFeeder) Feed(target any) error {
	data, err := os.ReadFile(j.Path)
	if err != nil {
		return wrapFileReadError(j.Path, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return wrapFileDecodeError("json", j.Path, err)
	}
	return nil
}
