package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"nessco.org/home-web/internal/locale"
	"nessco.org/home-web/internal/middleware"
	"nessco.org/home-web/internal/overlay"
)

// CountryPath receives country picker submissions.
const CountryPath = "/country"

// CountryPicker renders the country selection panel. Country names are shown in
// the page locale.
func CountryPicker(s Shell) g.Node {
	if len(s.Countries) == 0 {
		return nil
	}
	current := s.Site.Country
	return Div(
		Class("overlay overlay--country"),
		g.Attr(overlay.AttrPanel, overlay.CountryPanel),
		Button(
			Type("button"),
			Class("overlay__trigger"),
			g.Attr(overlay.AttrTrigger, overlay.CountryPanel),
			Aria("controls", "country-panel"),
			Aria("expanded", "false"),
			g.Text(locale.CountryLabel(current, s.Site.Locale)),
		),
		Div(
			ID("country-panel"),
			Class("overlay__body"),
			g.El("form",
				Method("post"),
				Action(CountryPath),
				Input(Type("hidden"), Name(middleware.CSRFFormField), Value(s.CSRFToken)),
				Input(Type("hidden"), Name("locale"), Value(s.Site.Locale)),
				g.El("label", For("country-select"), g.Text(s.t("country.select"))),
				Select(
					ID("country-select"),
					Name("country"),
					g.Map(s.Countries, func(code string) g.Node {
						return Option(
							Value(code),
							g.If(code == current, Selected()),
							g.Text(locale.CountryLabel(code, s.Site.Locale)),
						)
					}),
				),
				Button(Type("submit"), g.Text(s.t("country.select"))),
			),
		),
	)
}
