// Package i18n registers the directory copy with x/text and resolves the
// language a request should be rendered in.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var (
	supported = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	matcher   = language.NewMatcher(supported)
)

// Default returns the fallback language.
func Default() language.Tag {
	return language.AmericanEnglish
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// DefaultPrinter returns a printer for the fallback language.
func DefaultPrinter() *message.Printer {
	return Printer(Default())
}

// Match returns the supported tag closest to the preferred list.
func Match(preferred ...language.Tag) language.Tag {
	if len(preferred) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

// ResolveTag picks the language for a request from the lang query parameter
// first and the Accept-Language header second.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, err := language.Parse(value); err == nil {
			return Match(tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return Match(tags...)
		}
	}
	return Default()
}
