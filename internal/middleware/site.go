package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"nessco.org/home-web/internal/locale"
	"nessco.org/home-web/internal/requestctx"
)

// CountryCookie selects the visitor's country.
const CountryCookie = "country"

// Site resolves the request's locale from the {locale} route parameter and its
// country from the country cookie, and stores both in the request context.
// Unsupported locales coerce to the default locale.
func Site(set *locale.Set) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			site := requestctx.Site{
				Locale:  set.Normalize(chi.URLParam(r, "locale")),
				Country: CountryFromRequest(r),
			}
			ctx := requestctx.WithSite(r.Context(), site)
			ctx = requestctx.WithLogger(ctx, requestctx.Logger(ctx).With(
				zap.String("locale", site.Locale),
				zap.String("country", site.Country),
			))

			w.Header().Set("Content-Language", site.Locale)
			w.Header().Add("Vary", "Cookie")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CountryFromRequest reads the country cookie, defaulting when it is absent.
func CountryFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CountryCookie); err == nil {
		return locale.Country(c.Value)
	}
	return locale.DefaultCountry
}

// SiteFrom returns the resolved site, or the defaults when Site did not run.
func SiteFrom(r *http.Request) requestctx.Site {
	if s, ok := requestctx.SiteFrom(r.Context()); ok {
		return s
	}
	return requestctx.Site{Locale: locale.Default, Country: CountryFromRequest(r)}
}
