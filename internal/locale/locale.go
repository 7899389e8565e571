package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	// Default is the locale every unsupported value coerces to.
	Default = "en"
	// DefaultCountry is used when the request carries no country cookie.
	DefaultCountry = "in"
)

// DefaultSupported is the allow-list used when configuration does not override it.
var DefaultSupported = []string{"en", "fr", "es", "de", "it", "pt", "ru", "ar", "ja", "ko", "zh", "nl"}

// Set is a fixed allow-list of locale codes.
type Set struct {
	codes []string
	index map[string]struct{}
}

// NewSet builds an allow-list. The default locale is always a member.
func NewSet(codes ...string) *Set {
	if len(codes) == 0 {
		codes = DefaultSupported
	}
	s := &Set{index: map[string]struct{}{}}
	add := func(code string) {
		code = clean(code)
		if code == "" {
			return
		}
		if _, ok := s.index[code]; ok {
			return
		}
		s.index[code] = struct{}{}
		s.codes = append(s.codes, code)
	}
	add(Default)
	for _, c := range codes {
		add(c)
	}
	return s
}

// Normalize returns code when supported and Default otherwise.
func (s *Set) Normalize(code string) string {
	code = clean(code)
	if s.Contains(code) {
		return code
	}
	return Default
}

// Contains reports whether code is in the allow-list (after cleaning).
func (s *Set) Contains(code string) bool {
	if s == nil {
		return clean(code) == Default
	}
	_, ok := s.index[clean(code)]
	return ok
}

// Supported returns the allow-list in declaration order, default first.
func (s *Set) Supported() []string {
	if s == nil {
		return []string{Default}
	}
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// Tag converts a locale code into a BCP 47 tag, falling back to English.
func Tag(code string) language.Tag {
	tag, err := language.Parse(clean(code))
	if err != nil {
		return language.English
	}
	return tag
}

// Country returns the requested country code, or DefaultCountry when empty.
// Values are not validated; callers escape them before building URLs.
func Country(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultCountry
	}
	return strings.ToLower(code)
}

// CountryLabel names the region for a country code in the given locale, falling
// back to English and finally to the upper-cased code.
func CountryLabel(code, localeCode string) string {
	region, err := language.ParseRegion(strings.TrimSpace(code))
	if err != nil {
		return strings.ToUpper(strings.TrimSpace(code))
	}
	if name := display.Regions(Tag(localeCode)).Name(region); name != "" {
		return name
	}
	if name := display.Regions(language.English).Name(region); name != "" {
		return name
	}
	return region.String()
}

func clean(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
