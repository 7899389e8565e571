// Package seo builds the document metadata (title, Open Graph, Twitter card,
// canonical and hreflang links) for the localized home page.
package seo

// TwitterCard is the twitter:card value.
type TwitterCard string

const (
	CardSummary           TwitterCard = "summary"
	CardSummaryLargeImage TwitterCard = "summary_large_image"
	CardPlayer            TwitterCard = "player"
	CardApp               TwitterCard = "app"
)

// Valid reports whether c is one of the card types Twitter understands.
func (c TwitterCard) Valid() bool {
	switch c {
	case CardSummary, CardSummaryLargeImage, CardPlayer, CardApp:
		return true
	}
	return false
}

type Image struct {
	URL string `json:"url" yaml:"url"`
	Alt string `json:"alt,omitempty" yaml:"alt"`
}

type OpenGraph struct {
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	URL         string  `json:"url,omitempty" yaml:"url"`
	Images      []Image `json:"images" yaml:"images"`
}

type Twitter struct {
	Card        TwitterCard `json:"card" yaml:"card"`
	Site        string      `json:"site" yaml:"site"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Image       string      `json:"image,omitempty" yaml:"image"`
}

// Alternate is a hreflang link.
type Alternate struct {
	Hreflang string `json:"hreflang"`
	Href     string `json:"href"`
}

// Metadata is everything the page shell renders into <head>.
type Metadata struct {
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Keywords    string      `json:"keywords" yaml:"keywords"`
	Robots      string      `json:"robots" yaml:"robots"`
	Canonical   string      `json:"canonical" yaml:"canonical"`
	OpenGraph   OpenGraph   `json:"openGraph" yaml:"openGraph"`
	Twitter     Twitter     `json:"twitter" yaml:"twitter"`
	Alternates  []Alternate `json:"alternates,omitempty" yaml:"-"`
	// StructuredData holds JSON-LD documents, already encoded.
	StructuredData []string `json:"structuredData,omitempty" yaml:"-"`
}

func (m Metadata) clone() Metadata {
	out := m
	out.OpenGraph.Images = append([]Image(nil), m.OpenGraph.Images...)
	out.Alternates = append([]Alternate(nil), m.Alternates...)
	out.StructuredData = append([]string(nil), m.StructuredData...)
	return out
}
