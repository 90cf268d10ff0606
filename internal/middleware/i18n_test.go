package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		fallback language.Tag
		country  string
		want     language.Tag
	}{
		{
			name: "x-locale overrides",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "id-ID")
			},
			country: "US",
			want:    language.Indonesian,
		},
		{
			name: "accept-language used",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "en-US,en;q=0.9")
			},
			want: language.English,
		},
		{
			name: "accept-language id preference",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "id-ID,en;q=0.8")
			},
			want: language.Indonesian,
		},
		{
			name: "unsupported language falls back to en",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "ja-JP")
			},
			want: language.English,
		},
		{
			name:     "country id",
			country:  "ID",
			fallback: language.English,
			want:     language.Indonesian,
		},
		{
			name:     "configured fallback",
			fallback: language.Indonesian,
			want:     language.Indonesian,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.setup != nil {
				tc.setup(req)
			}
			fallback := tc.fallback
			if fallback == language.Und {
				fallback = language.English
			}
			got := detectLocale(req, fallback, tc.country)
			if got.String() != tc.want.String() {
				t.Fatalf("detectLocale() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolveCountry(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		resolver CountryLookup
		want     string
	}{
		{
			name: "header precedence",
			setup: func(r *http.Request) {
				r.Header.Set("X-Country-Code", "us")
				r.Header.Set("CF-IPCountry", "id")
			},
			want: "US",
		},
		{
			name: "resolver used",
			resolver: func(ip string) (string, error) {
				if ip != "203.0.113.4" {
					return "", errors.New("unexpected ip")
				}
				return "my", nil
			},
			want: "MY",
		},
		{
			name: "resolver error returns empty",
			resolver: func(string) (string, error) {
				return "", errors.New("boom")
			},
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.4:80"
			if tc.setup != nil {
				tc.setup(req)
			}
			if got := ResolveCountry(req, tc.resolver); got != tc.want {
				t.Fatalf("ResolveCountry() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestI18NSetsContextAndHeader(t *testing.T) {
	var gotLocale language.Tag
	var gotCountry string
	h := I18N("en", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = LocaleFromContext(r.Context())
		gotCountry = CountryFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("CF-IPCountry", "id")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if gotLocale.String() != "id" {
		t.Fatalf("locale = %v, want id", gotLocale)
	}
	if gotCountry != "ID" {
		t.Fatalf("country = %q, want ID", gotCountry)
	}
	if rr.Header().Get("Content-Language") != "id" {
		t.Fatalf("Content-Language = %q", rr.Header().Get("Content-Language"))
	}
}

func TestLocaleFromContextDefault(t *testing.T) {
	if got := LocaleFromContext(context.Background()); got.String() != "en" {
		t.Fatalf("LocaleFromContext() default = %v, want en", got)
	}
}
