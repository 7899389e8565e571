package home

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed contact_icons.yaml
var contactIconsYAML []byte

// ContactIcon is a floating contact shortcut.
type ContactIcon struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// DefaultIcons returns the contact shortcuts compiled into the binary.
func DefaultIcons() ([]ContactIcon, error) {
	return ParseIcons(contactIconsYAML)
}

// ParseIcons decodes an icons document. Entries without a name or href are rejected.
func ParseIcons(data []byte) ([]ContactIcon, error) {
	var doc struct {
		Icons []ContactIcon `yaml:"icons"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("home: parse contact icons: %w", err)
	}
	for i, icon := range doc.Icons {
		if strings.TrimSpace(icon.Name) == "" || strings.TrimSpace(icon.Href) == "" {
			return nil, fmt.Errorf("home: contact icon %d needs a name and href", i)
		}
		if icon.Label == "" {
			doc.Icons[i].Label = icon.Name
		}
	}
	return doc.Icons, nil
}
