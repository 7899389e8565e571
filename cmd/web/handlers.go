package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	g "maragu.dev/gomponents"

	"nessco.org/home-web/internal/cms"
	"nessco.org/home-web/internal/contact"
	"nessco.org/home-web/internal/locale"
	mw "nessco.org/home-web/internal/middleware"
	"nessco.org/home-web/internal/requestctx"
	"nessco.org/home-web/internal/seo"
	"nessco.org/home-web/internal/views"
)

const countryCookieMaxAge = 365 * 24 * time.Hour

// rootRedirect sends visitors to their country and best matching locale.
func (a *app) rootRedirect(w http.ResponseWriter, r *http.Request) {
	country := mw.CountryFromRequest(r)
	lang := a.locales.Normalize(a.bundle.Resolve(r.Header.Get("Accept-Language")))
	w.Header().Add("Vary", "Accept-Language, Cookie")
	http.Redirect(w, r, sitePath(country, lang), http.StatusFound)
}

// homePage renders the localized home page. Content and metadata are resolved
// concurrently and independently.
func (a *app) homePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	site := mw.SiteFrom(r)

	var (
		md  seo.Metadata
		doc *cms.ContentDocument
		eg  errgroup.Group
	)
	eg.Go(func() error {
		md = a.metadata.Generate(ctx, site)
		return nil
	})
	eg.Go(func() error {
		d, err := a.content.ResolveContent(ctx, site.Locale)
		if err != nil {
			requestctx.Logger(ctx).Warn("home: content unavailable", zap.Error(err))
			return nil
		}
		doc = d
		return nil
	})
	_ = eg.Wait()

	page := a.composer.Compose(ctx, doc, site, a.bundle.Translator(site.Locale))
	status := http.StatusOK
	if page.Failed {
		status = http.StatusServiceUnavailable
	}
	a.render(w, r, status, views.HomePage(a.shell(r, md, site), page))
}

// metadataJSON exposes the generated metadata for crawlers and debugging.
func (a *app) metadataJSON(w http.ResponseWriter, r *http.Request) {
	md := a.metadata.Generate(r.Context(), mw.SiteFrom(r))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(md)
}

func (a *app) submitEnquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	site := mw.SiteFrom(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	sub := contact.Submission{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Phone:   r.PostForm.Get("phone"),
		Company: r.PostForm.Get("company"),
		Message: r.PostForm.Get("message"),
	}

	st := views.FormState{Values: sub}
	status := http.StatusOK
	enquiry, err := a.enquiries.Submit(ctx, sub, site)
	var invalid *contact.ValidationError
	switch {
	case err == nil:
		st.Status = contact.OutcomeAccepted
	case errors.As(err, &invalid):
		st.Status = contact.OutcomeInvalid
		st.Errors = invalid.Fields()
		status = http.StatusUnprocessableEntity
	default:
		st.Status = contact.OutcomeFailed
		status = http.StatusBadGateway
	}

	if mw.WantsJSON(r) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(enquiryResponse{ID: enquiry.ID, Status: st.Status, Errors: st.Errors})
		return
	}

	shell := a.shell(r, seo.Metadata{Title: a.bundle.T(site.Locale, "contact.heading"), Robots: "noindex"}, site)
	if mw.IsFragment(r) {
		a.render(w, r, status, views.EnquiryForm(shell, st))
		return
	}
	a.render(w, r, status, views.EnquiryPage(shell, st))
}

type enquiryResponse struct {
	ID     string            `json:"id,omitempty"`
	Status string            `json:"status"`
	Errors map[string]string `json:"errors,omitempty"`
}

// selectCountry stores the picked country and returns to the home page.
func (a *app) selectCountry(w http.ResponseWriter, r *http.Request) {
	country := locale.Country(r.PostFormValue("country"))
	lang := a.locales.Normalize(r.PostFormValue("locale"))
	http.SetCookie(w, &http.Cookie{
		Name:     mw.CountryCookie,
		Value:    country,
		Path:     "/",
		MaxAge:   int(countryCookieMaxAge.Seconds()),
		Secure:   !a.cfg.Server.Dev,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, sitePath(country, lang), http.StatusSeeOther)
}

func (a *app) shell(r *http.Request, md seo.Metadata, site requestctx.Site) views.Shell {
	return views.Shell{
		Meta:      md,
		Site:      site,
		T:         a.bundle.Translator(site.Locale),
		CSRFToken: mw.CSRFToken(r.Context()),
		Countries: a.cfg.Site.Countries,
		Analytics: views.Analytics{
			GA4MeasurementID: a.cfg.Analytics.GA4MeasurementID,
			GTMContainerID:   a.cfg.Analytics.GTMContainerID,
			Debug:            a.cfg.Analytics.Debug,
		},
	}
}

func (a *app) render(w http.ResponseWriter, r *http.Request, status int, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := n.Render(w); err != nil {
		requestctx.Logger(r.Context()).Error("render failed", zap.Error(err))
	}
}

// sitePath escapes both segments so a crafted cookie cannot redirect off-site.
func sitePath(country, lang string) string {
	return "/" + url.PathEscape(country) + "/" + url.PathEscape(lang)
}
