// Package nav defines the in-page navigation between home page sections.
package nav

// Item is a navigation entry pointing at a section anchor.
type Item struct {
	Anchor   string // element id of the target section
	LabelKey string // i18n key, e.g. "nav.machines"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	Anchor   string
	LabelKey string
	Label    string
}

// Sections lists the navigable sections in page order.
var Sections = []Item{
	{Anchor: "machines", LabelKey: "nav.machines"},
	{Anchor: "about", LabelKey: "nav.about"},
	{Anchor: "clientele", LabelKey: "nav.clientele"},
	{Anchor: "knowMore", LabelKey: "nav.knowMore"},
	{Anchor: "news", LabelKey: "nav.news"},
	{Anchor: "testimonials", LabelKey: "nav.testimonials"},
}

// Build renders the section links, resolving labels with t. A nil t leaves labels
// set to their keys.
func Build(t func(key string) string) []RenderedItem {
	items := make([]RenderedItem, 0, len(Sections))
	for _, it := range Sections {
		label := it.LabelKey
		if t != nil {
			label = t(it.LabelKey)
		}
		items = append(items, RenderedItem{
			Href:     "#" + it.Anchor,
			Anchor:   it.Anchor,
			LabelKey: it.LabelKey,
			Label:    label,
		})
	}
	return items
}

// Anchors returns the section ids in page order.
func Anchors() []string {
	out := make([]string, 0, len(Sections))
	for _, it := range Sections {
		out = append(out, it.Anchor)
	}
	return out
}
