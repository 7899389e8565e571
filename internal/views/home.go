package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"nessco.org/home-web/internal/cms"
	"nessco.org/home-web/internal/format"
	"nessco.org/home-web/internal/home"
	"nessco.org/home-web/internal/nav"
	"nessco.org/home-web/internal/reveal"
)

// HomePage renders a composed page. A failed page shows only its failure message.
func HomePage(s Shell, page home.Page) g.Node {
	if page.Failed {
		return Layout(s, Failure(page.FailureMessage))
	}
	nodes := make([]g.Node, 0, len(page.Sections))
	for _, sec := range page.Sections {
		if n := renderSection(s, sec); n != nil {
			nodes = append(nodes, n)
		}
	}
	return Layout(s,
		Main(ID("home"), g.Group(nodes)),
		ContactOverlay(s),
		CountryPicker(s),
	)
}

// Failure is the minimal localized error shown when no content could be loaded.
func Failure(message string) g.Node {
	return Main(ID("home"),
		P(Class("home__failure"), Role("alert"), g.Text(message)),
	)
}

func renderSection(s Shell, sec home.Section) g.Node {
	switch sec.Kind {
	case home.KindHero:
		return hero(sec.Hero)
	case home.KindContactIcons:
		return contactIcons(sec.Icons)
	case home.KindNav:
		return sectionNav(s, sec)
	case home.KindAnnouncements:
		return announcements(sec.Announcements, s.Site.Locale)
	case home.KindMachines:
		return machines(sec)
	case home.KindAbout:
		return about(sec)
	case home.KindClientele:
		return clientele(sec)
	case home.KindKnowMore:
		return knowMore(sec)
	case home.KindNews:
		return news(sec, s.Site.Locale)
	case home.KindTestimonials:
		return testimonials(sec)
	}
	return nil
}

// block is the wrapper shared by the navigable sections.
func block(sec home.Section, children ...g.Node) g.Node {
	class := "section section--" + string(sec.Kind)
	if sec.Reveal {
		class += " " + reveal.HiddenClass
	}
	return Section(
		Class(class),
		g.If(sec.Anchor != "", ID(sec.Anchor)),
		g.If(sec.Reveal, g.Attr(reveal.Attribute, reveal.ModeOnce)),
		g.Group(children),
	)
}

func heading(title string) g.Node {
	if title == "" {
		return nil
	}
	return H2(Class("section__title"), g.Text(title))
}

func subheading(text string) g.Node {
	if text == "" {
		return nil
	}
	return P(Class("section__subheading"), g.Text(text))
}

func image(src, alt string) g.Node {
	if src == "" {
		return nil
	}
	return Img(Src(src), Alt(alt), g.Attr("loading", "lazy"))
}

func hero(h *cms.HeroSection) g.Node {
	if h == nil {
		return nil
	}
	return Header(
		Class("hero"),
		ID("hero"),
		image(h.Image, h.Title),
		H1(Class("hero__title"), g.Text(h.Title)),
		g.If(h.Subtitle != "", P(Class("hero__subtitle"), g.Text(h.Subtitle))),
		g.If(h.Description != "", P(Class("hero__description"), g.Text(h.Description))),
		g.Iff(h.CTA != nil && h.CTA.Href != "", func() g.Node {
			return A(Class("hero__cta"), Href(h.CTA.Href), g.Text(h.CTA.Label))
		}),
		g.If(len(h.Slides) > 0, Ul(Class("hero__slides"),
			g.Map(h.Slides, func(sl cms.Slide) g.Node {
				return Li(Class("hero__slide"),
					image(sl.Image, sl.Title),
					A(Href(sl.Href), H3(g.Text(sl.Title))),
					g.If(sl.Description != "", P(g.Text(sl.Description))),
				)
			}),
		)),
	)
}

func contactIcons(icons []home.ContactIcon) g.Node {
	if len(icons) == 0 {
		return nil
	}
	return Aside(
		Class("contact-icons"),
		Ul(g.Map(icons, func(ic home.ContactIcon) g.Node {
			return Li(A(
				Class("contact-icons__link contact-icons__link--"+ic.Name),
				Href(ic.Href),
				Aria("label", ic.Label),
				Rel("noopener"),
				Span(Class("contact-icons__label"), g.Text(ic.Label)),
			))
		})),
	)
}

func sectionNav(s Shell, sec home.Section) g.Node {
	if len(sec.Nav) == 0 {
		return nil
	}
	return Nav(
		Class("section-nav"),
		Aria("label", s.t("nav.label")),
		Ul(g.Map(sec.Nav, func(it nav.RenderedItem) g.Node {
			return Li(A(Href(it.Href), g.Attr("data-anchor", it.Anchor), g.Text(it.Label)))
		})),
	)
}

func announcements(a *cms.AnnouncementSection, lang string) g.Node {
	if a == nil || len(a.Items) == 0 {
		return nil
	}
	return Section(
		Class("announcements"),
		heading(a.Title),
		Ul(g.Map(a.Items, func(it cms.Announcement) g.Node {
			return Li(Class("announcements__item"),
				image(it.Image, it.Title),
				linkedTitle(H3, it.Title, it.Href),
				date(it.Date, lang),
				g.If(it.Body != "", P(g.Text(it.Body))),
			)
		})),
	)
}

func machines(sec home.Section) g.Node {
	m := sec.Machines
	if m == nil {
		return nil
	}
	return block(sec,
		H2(Class("section__title"),
			g.If(m.Lead != "", g.Text(m.Lead+" ")),
			Span(Class("section__highlight"), g.Text(m.Highlight)),
		),
		subheading(m.Subheading),
		Ul(Class("machines"), g.Map(m.Items, func(it cms.Machine) g.Node {
			return Li(Class("machines__item"),
				g.If(it.Category != "", g.Attr("data-category", it.Category)),
				image(it.Image, it.Name),
				linkedTitle(H3, it.Name, it.Href),
				g.If(it.Description != "", P(g.Text(it.Description))),
			)
		})),
	)
}

func about(sec home.Section) g.Node {
	a := sec.About
	if a == nil {
		return nil
	}
	return block(sec,
		heading(a.Title),
		image(a.Image, a.Title),
		Div(Class("prose"), g.Raw(a.BodyHTML)),
		g.If(len(a.Stats) > 0, Dl(Class("about__stats"), g.Map(a.Stats, func(st cms.Stat) g.Node {
			return Div(Dt(g.Text(st.Value)), Dd(g.Text(st.Label)))
		}))),
	)
}

func clientele(sec home.Section) g.Node {
	c := sec.Clientele
	if c == nil {
		return nil
	}
	return block(sec,
		heading(c.Title),
		subheading(c.Subheading),
		Ul(Class("clientele"), g.Map(c.Clients, func(cl cms.ClientLogo) g.Node {
			logo := image(cl.Logo, cl.Name)
			if logo == nil {
				logo = Span(g.Text(cl.Name))
			}
			if cl.Href == "" {
				return Li(logo)
			}
			return Li(A(Href(cl.Href), Rel("noopener"), logo))
		})),
	)
}

func knowMore(sec home.Section) g.Node {
	k := sec.KnowMore
	if k == nil {
		return nil
	}
	return block(sec,
		heading(k.Title),
		Div(Class("prose"), g.Raw(k.BodyHTML)),
		Ul(Class("cards"), g.Map(k.Cards, func(c cms.Card) g.Node {
			return Li(Class("cards__item"),
				image(c.Image, c.Title),
				linkedTitle(H3, c.Title, c.Href),
				g.If(c.Description != "", P(g.Text(c.Description))),
			)
		})),
	)
}

func news(sec home.Section, lang string) g.Node {
	n := sec.News
	if n == nil {
		return nil
	}
	return block(sec,
		heading(n.Title),
		Ul(Class("news"), g.Map(n.Items, func(it cms.NewsItem) g.Node {
			return Li(Class("news__item"),
				image(it.Image, it.Title),
				linkedTitle(H3, it.Title, it.Href),
				date(it.Date, lang),
				g.If(it.Summary != "", P(g.Text(it.Summary))),
			)
		})),
	)
}

func testimonials(sec home.Section) g.Node {
	t := sec.Testimonials
	if t == nil {
		return nil
	}
	return block(sec,
		heading(t.Title),
		subheading(t.Subheading),
		Div(Class("testimonials"), g.Map(t.Items, func(it cms.Testimonial) g.Node {
			return Figure(Class("testimonials__item"),
				image(it.Image, it.Name),
				BlockQuote(P(g.Text(it.Quote))),
				FigCaption(
					Strong(g.Text(it.Name)),
					g.If(it.Role != "" || it.Company != "", Span(g.Text(joinNonEmpty(", ", it.Role, it.Company)))),
				),
			)
		})),
	)
}

func date(raw, lang string) g.Node {
	if raw == "" {
		return nil
	}
	t, ok := format.ParseDate(raw)
	if !ok {
		return Time(g.Text(raw))
	}
	return Time(g.Attr("datetime", t.Format("2006-01-02")), g.Text(format.Date(t, lang)))
}

func linkedTitle(el func(...g.Node) g.Node, title, href string) g.Node {
	if href == "" {
		return el(g.Text(title))
	}
	return el(A(Href(href), g.Text(title)))
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
