package seo

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults are the fixed fallback metadata and the per-field defaults derived from it.
type Defaults struct {
	Metadata           Metadata `yaml:"metadata"`
	MissingCountryName string   `yaml:"missingCountryName"`
}

var builtinDefaults = sync.OnceValues(func() (Defaults, error) {
	return ParseDefaults(defaultsYAML)
})

// BuiltinDefaults returns the defaults embedded in the binary.
func BuiltinDefaults() Defaults {
	d, err := builtinDefaults()
	if err != nil {
		panic(fmt.Sprintf("seo: embedded defaults: %v", err))
	}
	return d
}

// ParseDefaults decodes a defaults document.
func ParseDefaults(data []byte) (Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("seo: parse defaults: %w", err)
	}
	if d.Metadata.Title == "" {
		return Defaults{}, errors.New("seo: defaults must set metadata.title")
	}
	if d.Metadata.Twitter.Card != "" && !d.Metadata.Twitter.Card.Valid() {
		return Defaults{}, fmt.Errorf("seo: defaults twitter card %q is not valid", d.Metadata.Twitter.Card)
	}
	return d, nil
}
