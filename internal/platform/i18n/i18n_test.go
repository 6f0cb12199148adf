package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", want: language.BrazilianPortuguese},
		{name: "query", target: "/?lang=en-US", want: language.AmericanEnglish, wantPersist: true},
		{name: "query short code", target: "/?lang=en", want: language.AmericanEnglish, wantPersist: true},
		{name: "unknown query falls through to cookie", target: "/?lang=xx", cookie: "en-US", want: language.AmericanEnglish},
		{name: "cookie", target: "/", cookie: "en-US", want: language.AmericanEnglish},
		{name: "accept language", target: "/", accept: "en-GB,en;q=0.8", want: language.AmericanEnglish},
		{name: "unsupported accept language", target: "/", accept: "ja", want: language.BrazilianPortuguese},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			got, persist := ResolveTag(req)
			if got != tc.want {
				t.Fatalf("ResolveTag() tag = %v, want %v", got, tc.want)
			}
			if persist != tc.wantPersist {
				t.Fatalf("ResolveTag() persist = %t, want %t", persist, tc.wantPersist)
			}
		})
	}
}

func TestResolveTagNilRequestUsesDefault(t *testing.T) {
	t.Parallel()

	if got, _ := ResolveTag(nil); got != DefaultTag() {
		t.Fatalf("ResolveTag(nil) = %v, want %v", got, DefaultTag())
	}
}

func TestResolveLocalizerPersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=en-US", nil)
	loc, tag := ResolveLocalizer(rr, req)
	if tag != language.AmericanEnglish {
		t.Fatalf("tag = %v, want %v", tag, language.AmericanEnglish)
	}
	if got := loc.Sprintf("form.submit"); got != "Create my pool" {
		t.Fatalf("form.submit = %q, want %q", got, "Create my pool")
	}
	if setCookie := rr.Header().Get("Set-Cookie"); !strings.Contains(setCookie, LangCookieName+"=en-US") {
		t.Fatalf("Set-Cookie = %q, want %s=en-US", setCookie, LangCookieName)
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	t.Parallel()

	keys := []string{
		"title.landing", "landing.headline", "landing.users_using", "landing.hint",
		"stats.pools", "stats.guesses", "form.title_placeholder", "form.submit",
		"notice.pool_created", "notice.pool_failed", "notice.pool_in_progress",
		"error.title", "error.not_found", "error.unavailable", "error.internal",
	}
	for _, tag := range SupportedTags() {
		p := Printer(tag)
		for _, key := range keys {
			if got := p.Sprintf(key); got == key {
				t.Fatalf("%v missing translation for %q", tag, key)
			}
		}
	}
}

func TestPortugueseCopy(t *testing.T) {
	t.Parallel()

	p := Printer(language.BrazilianPortuguese)
	if got := p.Sprintf("form.submit"); got != "Criar meu bolão" {
		t.Fatalf("form.submit = %q, want %q", got, "Criar meu bolão")
	}
	if got := p.Sprintf("title.landing", "NLW Copa"); got != "NLW Copa | Crie seu bolão" {
		t.Fatalf("title.landing = %q", got)
	}
}
