package views

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Analytics holds client instrumentation identifiers rendered into <head>.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
	Debug            bool
}

// Enabled reports whether any tag is configured.
func (a Analytics) Enabled() bool {
	return a.GA4MeasurementID != "" || a.GTMContainerID != ""
}

func analyticsHead(a Analytics) []g.Node {
	var nodes []g.Node
	if id := a.GA4MeasurementID; id != "" {
		cfg := map[string]any{}
		if a.Debug {
			cfg["debug_mode"] = true
		}
		nodes = append(nodes,
			Script(Async(), Src("https://www.googletagmanager.com/gtag/js?id="+id)),
			Script(g.Raw("window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config',"+jsString(id)+","+jsValue(cfg)+");")),
		)
	}
	if id := a.GTMContainerID; id != "" {
		nodes = append(nodes, Script(g.Raw(
			"(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});"+
				"var f=d.getElementsByTagName(s)[0],j=d.createElement(s);j.async=true;"+
				"j.src='https://www.googletagmanager.com/gtm.js?id='+encodeURIComponent(i);f.parentNode.insertBefore(j,f);"+
				"})(window,document,'script','dataLayer',"+jsString(id)+");",
		)))
	}
	return nodes
}

// jsString encodes s as a script-safe JavaScript string literal.
func jsString(s string) string {
	return jsValue(s)
}

func jsValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
