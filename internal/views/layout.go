// Package views renders the home page with gomponents.
package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"nessco.org/home-web/internal/i18n"
	"nessco.org/home-web/internal/requestctx"
	"nessco.org/home-web/internal/seo"
)

// AssetPrefix is where static assets are mounted.
const AssetPrefix = "/assets"

// Shell carries the per-request values every page needs.
type Shell struct {
	Meta      seo.Metadata
	Site      requestctx.Site
	T         i18n.Translator
	CSRFToken string
	// Countries offered by the country picker.
	Countries []string
	Analytics Analytics
}

func (s Shell) t(key string) string {
	if s.T == nil {
		return key
	}
	return s.T(key)
}

// Layout wraps content in the HTML document, rendering s.Meta into <head>.
func Layout(s Shell, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(s.Site.Locale),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				g.Group(Metadata(s.Meta)),
				Link(Rel("icon"), Href(AssetPrefix+"/images/favicon.png")),
				Link(Rel("stylesheet"), Href(AssetPrefix+"/css/site.css")),
				g.Group(analyticsHead(s.Analytics)),
			),
			Body(
				Class("home"),
				g.Group(content),

				Script(Defer(), Src(AssetPrefix+"/js/reveal.js")),
				Script(Defer(), Src(AssetPrefix+"/js/overlay.js")),
			),
		),
	})
}

// Metadata returns the <head> nodes for md. Empty values are skipped.
func Metadata(md seo.Metadata) []g.Node {
	nodes := []g.Node{TitleEl(g.Text(md.Title))}
	nodes = append(nodes,
		metaName("description", md.Description),
		metaName("keywords", md.Keywords),
		metaName("robots", md.Robots),
	)
	if md.Canonical != "" {
		nodes = append(nodes, Link(Rel("canonical"), Href(md.Canonical)))
	}
	for _, alt := range md.Alternates {
		nodes = append(nodes, Link(Rel("alternate"), g.Attr("hreflang", alt.Hreflang), Href(alt.Href)))
	}

	og := md.OpenGraph
	nodes = append(nodes,
		metaProperty("og:type", "website"),
		metaProperty("og:title", og.Title),
		metaProperty("og:description", og.Description),
		metaProperty("og:url", og.URL),
	)
	for _, img := range og.Images {
		nodes = append(nodes, metaProperty("og:image", img.URL), metaProperty("og:image:alt", img.Alt))
	}

	tw := md.Twitter
	nodes = append(nodes,
		metaName("twitter:card", string(tw.Card)),
		metaName("twitter:site", tw.Site),
		metaName("twitter:title", tw.Title),
		metaName("twitter:description", tw.Description),
		metaName("twitter:image", tw.Image),
	)

	for _, doc := range md.StructuredData {
		nodes = append(nodes, Script(Type("application/ld+json"), g.Raw(doc)))
	}
	return compact(nodes)
}

func compact(nodes []g.Node) []g.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func metaName(name, content string) g.Node {
	if content == "" {
		return nil
	}
	return Meta(Name(name), Content(content))
}

func metaProperty(property, content string) g.Node {
	if content == "" {
		return nil
	}
	return Meta(g.Attr("property", property), Content(content))
}
