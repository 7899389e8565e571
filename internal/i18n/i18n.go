// Package i18n holds the UI strings that do not come from the content documents.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var embedded embed.FS

// Translator returns the string for a message id in a fixed language.
type Translator func(key string) string

// Bundle serves translations for the supported locales with a single fallback.
type Bundle struct {
	bundle     *goi18n.Bundle
	fallback   string
	supported  []string
	localizers map[string]*goi18n.Localizer
	matcher    language.Matcher
}

// Embedded loads the message files compiled into the binary.
func Embedded(fallback string, supported []string) (*Bundle, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub, fallback, supported)
}

// Load reads "<locale>.json" for each supported locale from fsys. Only the fallback
// locale's file is mandatory; other locales fall back to it key by key.
func Load(fsys fs.FS, fallback string, supported []string) (*Bundle, error) {
	fallback = strings.ToLower(strings.TrimSpace(fallback))
	if fallback == "" {
		fallback = "en"
	}
	if len(supported) == 0 {
		supported = []string{fallback}
	}
	b := &Bundle{
		bundle:     goi18n.NewBundle(language.Make(fallback)),
		fallback:   fallback,
		localizers: map[string]*goi18n.Localizer{},
	}
	b.bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	tags := make([]language.Tag, 0, len(supported)+1)
	tags = append(tags, language.Make(fallback))
	seen := map[string]struct{}{}
	for _, raw := range append([]string{fallback}, supported...) {
		l := strings.ToLower(strings.TrimSpace(raw))
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}

		name := l + ".json"
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("i18n: load fallback locale %s: %w", l, err)
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("i18n: load locale %s: %w", l, err)
			}
		} else if _, err := b.bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}

		b.supported = append(b.supported, l)
		b.localizers[l] = goi18n.NewLocalizer(b.bundle, l, fallback)
		if l != fallback {
			tags = append(tags, language.Make(l))
		}
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Supported returns the locales in load order, fallback first.
func (b *Bundle) Supported() []string {
	return append([]string(nil), b.supported...)
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// T returns the translation for key in lang, falling back to the fallback
// language and finally to key itself.
func (b *Bundle) T(lang, key string) string {
	loc, ok := b.localizers[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		loc = b.localizers[b.fallback]
	}
	if msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: key}); err == nil && msg != "" {
		return msg
	}
	fb := b.localizers[b.fallback]
	if msg, err := fb.Localize(&goi18n.LocalizeConfig{MessageID: key}); err == nil && msg != "" {
		return msg
	}
	return key
}

// Translator binds T to a single language.
func (b *Bundle) Translator(lang string) Translator {
	return func(key string) string { return b.T(lang, key) }
}

// Resolve chooses the best supported language for an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.fallback
	}
	// index 0 is the fallback tag; the remaining tags follow b.supported order.
	if idx <= 0 || idx >= len(b.supported) {
		return b.fallback
	}
	return b.supported[idx]
}
