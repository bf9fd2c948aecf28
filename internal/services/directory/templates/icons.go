package templates

import (
	"strconv"

	"github.com/a-h/templ"
)

// Font Awesome classes used by the directory views.
const (
	iconEmail   = "fa-envelope"
	iconPhone   = "fa-phone"
	iconWebsite = "fa-globe"
	iconCompany = "fa-building"
	iconAddress = "fa-map-marker-alt"
	iconReload  = "fa-sync-alt"
	iconError   = "fa-exclamation-triangle"
	iconSearch  = "fa-search"
)

func icon(name string) templ.Component {
	return El("i", []Attr{Class("fas", name), A("aria-hidden", "true")})
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
