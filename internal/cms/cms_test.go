package cms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nessco.org/home-web/internal/cache"
)

type upstream struct {
	mu       sync.Mutex
	hits     map[string]int
	headers  map[string]http.Header
	bodies   map[string]string
	statuses map[string]int
}

func newUpstream() *upstream {
	return &upstream{
		hits:     map[string]int{},
		headers:  map[string]http.Header{},
		bodies:   map[string]string{},
		statuses: map[string]int{},
	}
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.hits[r.URL.Path]++
	u.headers[r.URL.Path] = r.Header.Clone()
	body, ok := u.bodies[r.URL.Path]
	status := u.statuses[r.URL.Path]
	u.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (u *upstream) count(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hits[path]
}

func newTestClient(t *testing.T, u *upstream, store cache.Store) *Client {
	t.Helper()
	srv := httptest.NewServer(u)
	t.Cleanup(srv.Close)
	return NewClient(Options{
		ContentBaseURL: srv.URL + "/content/",
		CountryBaseURL: srv.URL + "/countries",
		HTTPClient:     srv.Client(),
		Cache:          store,
		CacheTTL:       time.Minute,
	})
}

const frenchDoc = `{"home":[{"homeSeoData":{"title":"Accueil"},"heroSection":{"title":"Bonjour"}}]}`
const englishDoc = `{"home":[{"homeSeoData":{"title":"Home"},"heroSection":{"title":"Hello"}}]}`

func TestResolveContentPrimary(t *testing.T) {
	u := newUpstream()
	u.bodies["/content/fr/hero.json"] = frenchDoc
	client := newTestClient(t, u, nil)

	doc, err := client.ResolveContent(context.Background(), "fr")
	require.NoError(t, err)
	require.Equal(t, "Accueil", *doc.Entry().SEO.Title)
	require.Equal(t, "Bonjour", doc.Entry().Hero.Title)
	require.Zero(t, u.count("/content/en/hero.json"))
}

func TestResolveContentFallsBackOnceWithoutCache(t *testing.T) {
	u := newUpstream()
	u.statuses["/content/de/hero.json"] = http.StatusInternalServerError
	u.bodies["/content/en/hero.json"] = englishDoc
	store := cache.NewMemory()
	client := newTestClient(t, u, store)

	doc, err := client.ResolveContent(context.Background(), "de")
	require.NoError(t, err)
	require.Equal(t, "Hello", doc.Entry().Hero.Title)
	require.Equal(t, 1, u.count("/content/de/hero.json"))
	require.Equal(t, 1, u.count("/content/en/hero.json"))
	require.Equal(t, "no-cache", u.headers["/content/en/hero.json"].Get("Cache-Control"))
	require.Zero(t, store.Len(), "fallback responses must not be cached")
}

func TestResolveContentFallsBackForDefaultLocaleToo(t *testing.T) {
	u := newUpstream()
	u.bodies["/content/en/hero.json"] = `{"home":[]}`
	client := newTestClient(t, u, nil)

	_, err := client.ResolveContent(context.Background(), "en")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmptyDocument)
	require.Equal(t, 2, u.count("/content/en/hero.json"))
}

func TestResolveContentJoinsErrors(t *testing.T) {
	u := newUpstream()
	u.bodies["/content/es/hero.json"] = `not json`
	u.statuses["/content/en/hero.json"] = http.StatusBadGateway
	client := newTestClient(t, u, nil)

	doc, err := client.ResolveContent(context.Background(), "es")
	require.Nil(t, doc)
	require.ErrorIs(t, err, ErrUpstreamStatus)
	require.Contains(t, err.Error(), "decode")
}

func TestResolveContentCachesPrimary(t *testing.T) {
	u := newUpstream()
	u.bodies["/content/fr/hero.json"] = frenchDoc
	client := newTestClient(t, u, cache.NewMemory())

	for i := 0; i < 3; i++ {
		_, err := client.ResolveContent(context.Background(), "fr")
		require.NoError(t, err)
	}
	require.Equal(t, 1, u.count("/content/fr/hero.json"))
	require.Empty(t, u.headers["/content/fr/hero.json"].Get("Cache-Control"))
}

func TestResolveCountryName(t *testing.T) {
	u := newUpstream()
	u.bodies["/countries/fr.json"] = `{"en":"France","fr":"France","de":"Frankreich","es":""}`
	u.bodies["/countries/in.json"] = `{"en":"India","fr":"Inde"}`
	client := newTestClient(t, u, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		country string
		locale  string
		want    CountryName
	}{
		{name: "requested locale", country: "fr", locale: "de", want: CountryName{Value: "Frankreich", Present: true}},
		{name: "english key when locale missing", country: "fr", locale: "ja", want: CountryName{Value: "France", Present: true}},
		{name: "blank name falls back to english", country: "fr", locale: "es", want: CountryName{Value: "France", Present: true}},
		{name: "country code is lower-cased", country: "FR", locale: "de", want: CountryName{Value: "Frankreich", Present: true}},
		{name: "unknown country uses fallback document", country: "xx", locale: "fr", want: CountryName{Value: "Inde", Present: true}},
		{name: "empty country uses default", country: "", locale: "en", want: CountryName{Value: "India", Present: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := client.ResolveCountryName(ctx, tc.country, tc.locale)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestResolveCountryNameUnreachableCountry(t *testing.T) {
	u := newUpstream()
	u.bodies["/countries/in.json"] = `{"fr":"France","en":"English fallback"}`
	client := newTestClient(t, u, nil)

	got, err := client.ResolveCountryName(context.Background(), "xx", "fr")
	require.NoError(t, err)
	require.Equal(t, CountryName{Value: "France", Present: true}, got)
}

func TestResolveCountryNameAbsent(t *testing.T) {
	u := newUpstream()
	u.bodies["/countries/jp.json"] = `{"ja":"日本"}`
	client := newTestClient(t, u, nil)

	got, err := client.ResolveCountryName(context.Background(), "jp", "fr")
	require.NoError(t, err)
	require.False(t, got.Present)
	require.Empty(t, got.Value)
}

func TestResolveCountryNameBothFetchesFail(t *testing.T) {
	u := newUpstream()
	client := newTestClient(t, u, nil)

	_, err := client.ResolveCountryName(context.Background(), "xx", "en")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUpstreamStatus))
	require.Equal(t, 1, u.count("/countries/xx.json"))
	require.Equal(t, 1, u.count("/countries/in.json"))
}

func TestDocumentURLEscapesSegments(t *testing.T) {
	client := NewClient(Options{CountryBaseURL: "https://example.com/c/"})
	require.Equal(t, "https://example.com/c/..%2Fsecret.json", client.CountryURL("../secret"))
}

func TestCountryNameMapLookup(t *testing.T) {
	m := CountryNameMap{"en": "India"}
	require.Equal(t, CountryName{Value: "India", Present: true}, m.Lookup(" FR "))
	require.Equal(t, CountryName{}, CountryNameMap(nil).Lookup("en"))
}
