// Package home composes the home page out of a content document.
package home

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"nessco.org/home-web/internal/cms"
	"nessco.org/home-web/internal/i18n"
	"nessco.org/home-web/internal/nav"
	"nessco.org/home-web/internal/requestctx"
	"nessco.org/home-web/internal/richtext"
)

// Kind identifies a page section.
type Kind string

const (
	KindHero          Kind = "hero"
	KindContactIcons  Kind = "contactIcons"
	KindNav           Kind = "nav"
	KindAnnouncements Kind = "announcements"
	KindMachines      Kind = "machines"
	KindAbout         Kind = "about"
	KindClientele     Kind = "clientele"
	KindKnowMore      Kind = "knowMore"
	KindNews          Kind = "news"
	KindTestimonials  Kind = "testimonials"
)

// Order is the fixed top-to-bottom section order.
var Order = []Kind{
	KindHero,
	KindContactIcons,
	KindNav,
	KindAnnouncements,
	KindMachines,
	KindAbout,
	KindClientele,
	KindKnowMore,
	KindNews,
	KindTestimonials,
}

// Section is one block of the page. Exactly one payload field matching Kind is set.
type Section struct {
	Kind   Kind
	Anchor string
	// Reveal marks sections that fade in once when first scrolled into view.
	Reveal bool

	Hero          *cms.HeroSection
	Icons         []ContactIcon
	Nav           []nav.RenderedItem
	Announcements *cms.AnnouncementSection
	Machines      *Machines
	About         *About
	Clientele     *cms.ClienteleSection
	KnowMore      *KnowMore
	News          *cms.NewsSection
	Testimonials  *cms.TestimonialSection
}

// Machines is the machine showcase with its title split for highlighting.
type Machines struct {
	Lead       string
	Highlight  string
	Subheading string
	Items      []cms.Machine
}

type About struct {
	Title    string
	BodyHTML string
	Image    string
	Stats    []cms.Stat
}

type KnowMore struct {
	Title    string
	BodyHTML string
	Cards    []cms.Card
}

// Page is the composed home page. When Failed is set only FailureMessage is shown.
type Page struct {
	Site           requestctx.Site
	Failed         bool
	FailureMessage string
	Sections       []Section
}

// Section returns the section of kind k, if present.
func (p Page) Section(k Kind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind == k {
			return s, true
		}
	}
	return Section{}, false
}

// Composer builds Pages. It is safe for concurrent use.
type Composer struct {
	text  *richtext.Renderer
	icons []ContactIcon
}

// NewComposer uses text for markdown bodies and icons for the contact shortcuts.
func NewComposer(text *richtext.Renderer, icons []ContactIcon) *Composer {
	if text == nil {
		text = richtext.New()
	}
	return &Composer{text: text, icons: icons}
}

// Compose lays out doc for site. A nil or empty document yields a failed page
// carrying only the localized failedToLoadData message.
func (c *Composer) Compose(ctx context.Context, doc *cms.ContentDocument, site requestctx.Site, t i18n.Translator) Page {
	if t == nil {
		t = func(key string) string { return key }
	}
	entry := doc.Entry()
	if entry == nil {
		return Page{Site: site, Failed: true, FailureMessage: t("failedToLoadData")}
	}

	sections := make([]Section, 0, len(Order))
	for _, kind := range Order {
		sections = append(sections, c.section(ctx, kind, entry, t))
	}
	return Page{Site: site, Sections: sections}
}

func (c *Composer) section(ctx context.Context, kind Kind, e *cms.HomeEntry, t i18n.Translator) Section {
	s := Section{Kind: kind}
	switch kind {
	case KindHero:
		s.Hero = orZero(e.Hero)
	case KindContactIcons:
		s.Icons = append([]ContactIcon(nil), c.icons...)
	case KindNav:
		s.Nav = nav.Build(t)
	case KindAnnouncements:
		s.Announcements = orZero(e.Announcement)
	case KindMachines:
		m := orZero(e.Machines)
		lead, highlight := SplitTitle(m.Title)
		s.Machines = &Machines{Lead: lead, Highlight: highlight, Subheading: m.Subheading, Items: m.Machines}
	case KindAbout:
		a := orZero(e.About)
		s.About = &About{Title: a.Title, BodyHTML: c.markdown(ctx, "about", a.Description), Image: a.Image, Stats: a.Stats}
	case KindClientele:
		s.Clientele = orZero(e.Clientele)
	case KindKnowMore:
		k := orZero(e.KnowMore)
		s.KnowMore = &KnowMore{Title: k.Title, BodyHTML: c.markdown(ctx, "knowMore", k.Body), Cards: k.Cards}
	case KindNews:
		s.News = orZero(e.News)
	case KindTestimonials:
		s.Testimonials = orZero(e.Testimonials)
	}
	switch kind {
	case KindMachines, KindAbout, KindClientele, KindKnowMore, KindNews, KindTestimonials:
		s.Anchor = string(kind)
		s.Reveal = true
	}
	return s
}

func (c *Composer) markdown(ctx context.Context, section, body string) string {
	out, err := c.text.HTML(body)
	if err != nil {
		requestctx.Logger(ctx).Warn("home: markdown render failed", zap.String("section", section), zap.Error(err))
		return ""
	}
	return out
}

// SplitTitle separates the last word of title, which the page highlights, from the
// words before it. A single word is returned entirely as the highlight.
func SplitTitle(title string) (lead, highlight string) {
	title = strings.TrimSpace(title)
	idx := strings.LastIndexFunc(title, unicode.IsSpace)
	if idx < 0 {
		return "", title
	}
	_, size := utf8.DecodeRuneInString(title[idx:])
	return strings.TrimRightFunc(title[:idx], unicode.IsSpace), title[idx+size:]
}

func orZero[T any](v *T) *T {
	if v == nil {
		return new(T)
	}
	return v
}
