package immutable

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/GoCodeAlone/demokit"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// settingsDoc is the serialized form of Settings.
type settingsDoc struct {
	Theme         string   `yaml:"theme" json:"theme"`
	FontSize      int      `yaml:"font_size" json:"font_size"`
	Notifications bool     `yaml:"notifications" json:"notifications"`
	Languages     []string `yaml:"languages" json:"languages"`
}

// Settings is a frozen set of user preferences. The zero value is not
// valid; start from DefaultSettings or FromYAML.
type Settings struct {
	doc settingsDoc
}

type SettingsOption func(*settingsDoc)

func WithTheme(theme string) SettingsOption { return func(d *settingsDoc) { d.Theme = theme } }
func WithFontSize(size int) SettingsOption  { return func(d *settingsDoc) { d.FontSize = size } }
func WithNotifications(on bool) SettingsOption {
	return func(d *settingsDoc) { d.Notifications = on }
}
func WithLanguages(langs ...string) SettingsOption {
	return func(d *settingsDoc) { d.Languages = slices.Clone(langs) }
}

func DefaultSettings() Settings {
	return Settings{doc: settingsDoc{
		Theme:         "light",
		FontSize:      14,
		Notifications: true,
		Languages:     []string{"en"},
	}}
}

// FromYAML overlays data on the defaults. Unknown keys are rejected.
func FromYAML(data []byte) (Settings, error) {
	doc := DefaultSettings().doc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if err := validateSettings(doc); err != nil {
		return Settings{}, err
	}
	return Settings{doc: doc}, nil
}

// Update returns new settings with opts applied.
func (s Settings) Update(opts ...SettingsOption) (Settings, error) {
	doc := s.doc
	doc.Languages = slices.Clone(s.doc.Languages)
	for _, opt := range opts {
		opt(&doc)
	}
	if err := validateSettings(doc); err != nil {
		return Settings{}, err
	}
	return Settings{doc: doc}, nil
}

func validateSettings(d settingsDoc) error {
	switch d.Theme {
	case "light", "dark", "system":
	default:
		return demokit.UnsupportedType("theme", d.Theme)
	}
	if d.FontSize < 8 || d.FontSize > 72 {
		return demokit.NewValidationError("font size", d.FontSize, "must be between 8 and 72")
	}
	if len(d.Languages) == 0 {
		return demokit.NewValidationError("languages", "", "at least one is required")
	}
	return nil
}

func (s Settings) Theme() string       { return s.doc.Theme }
func (s Settings) FontSize() int       { return s.doc.FontSize }
func (s Settings) Notifications() bool { return s.doc.Notifications }
func (s Settings) Languages() []string { return slices.Clone(s.doc.Languages) }

func (s Settings) YAML() (string, error) {
	out, err := yaml.Marshal(s.doc)
	if err != nil {
		return "", fmt.Errorf("encoding settings: %w", err)
	}
	return string(out), nil
}

func (s Settings) JSON() (string, error) {
	out, err := json.Marshal(s.doc)
	if err != nil {
		return "", fmt.Errorf("encoding settings: %w", err)
	}
	return string(out), nil
}
