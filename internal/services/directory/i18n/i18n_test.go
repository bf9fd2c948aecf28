package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		accept string
		want   language.Tag
	}{
		{name: "default", target: "/", want: language.AmericanEnglish},
		{name: "query param wins", target: "/?lang=pt-BR", accept: "en-US", want: language.BrazilianPortuguese},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9", want: language.BrazilianPortuguese},
		{name: "base portuguese", target: "/", accept: "pt", want: language.BrazilianPortuguese},
		{name: "unsupported falls back", target: "/", accept: "ja", want: language.AmericanEnglish},
		{name: "unknown param ignored", target: "/?lang=!!", accept: "pt-BR", want: language.BrazilianPortuguese},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.accept != "" {
				r.Header.Set("Accept-Language", tc.accept)
			}
			if got := ResolveTag(r); got != tc.want {
				t.Fatalf("ResolveTag() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	t.Parallel()

	if got := ResolveTag(nil); got != Default() {
		t.Fatalf("ResolveTag(nil) = %v, want %v", got, Default())
	}
}

func TestPrinterTranslatesKeys(t *testing.T) {
	t.Parallel()

	if got := Printer(language.AmericanEnglish).Sprintf(NoUsersKey); got != "No users to display" {
		t.Fatalf("en NoUsers = %q", got)
	}
	if got := Printer(language.BrazilianPortuguese).Sprintf(RetryLabelKey); got != "Tentar novamente" {
		t.Fatalf("pt-BR Retry = %q", got)
	}
}

func TestRelTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		tag  language.Tag
		then time.Time
		want string
	}{
		{name: "english minutes", tag: language.AmericanEnglish, then: now.Add(-2 * time.Minute), want: "2 minutes ago"},
		{name: "portuguese minutes", tag: language.BrazilianPortuguese, then: now.Add(-2 * time.Minute), want: "há 2 minutos"},
		{name: "portuguese one hour", tag: language.BrazilianPortuguese, then: now.Add(-90 * time.Minute), want: "há 1 hora"},
		{name: "portuguese now", tag: language.BrazilianPortuguese, then: now, want: "agora"},
		{name: "portuguese future", tag: language.BrazilianPortuguese, then: now.Add(3 * humanize.Day), want: "daqui a 3 dias"},
		{name: "base portuguese", tag: language.Portuguese, then: now.Add(-5 * time.Second), want: "há 5 segundos"},
		{name: "unsupported falls back", tag: language.Japanese, then: now.Add(-2 * time.Minute), want: "2 minutes ago"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := RelTime(tc.tag, tc.then, now); got != tc.want {
				t.Fatalf("RelTime() = %q, want %q", got, tc.want)
			}
		})
	}
}
