// Package format renders upstream values for display in a locale.
package format

import (
	"strings"
	"time"
)

var inputLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"}

// ParseDate reads the date formats the content documents use.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date formats t in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "en":
		return t.Format("Jan 2, 2006")
	case "ja", "zh", "ko":
		return t.Format("2006/01/02")
	case "de", "ru":
		return t.Format("02.01.2006")
	case "nl":
		return t.Format("02-01-2006")
	default:
		return t.Format("02/01/2006")
	}
}

// DisplayDate formats raw for lang. Values that are not dates are returned as-is.
func DisplayDate(raw, lang string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return Date(t, lang)
}
