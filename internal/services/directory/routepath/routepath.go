// Package routepath centralizes the directory route paths.
package routepath

import (
	"net/url"

	directoryi18n "github.com/louisbranch/userdirectory/internal/services/directory/i18n"
)

const (
	Root    = "/"
	State   = "/state"
	Users   = "/users"
	Reload  = "/reload"
	Retry   = "/retry"
	Healthz = "/healthz"
	Static  = "/static/"
)

// QueryParam is the search query parameter.
const QueryParam = "q"

// StateWithQuery returns the state panel path carrying a search query and
// the page language. Empty values are left out.
func StateWithQuery(query, lang string) string {
	return withParams(State, query, lang)
}

// WithLang returns path carrying the page language, so fragment requests
// render in the language the page was opened with.
func WithLang(path, lang string) string {
	return withParams(path, "", lang)
}

// StaticAsset returns the path of an embedded static file.
func StaticAsset(name string) string {
	return Static + name
}

func withParams(path, query, lang string) string {
	values := url.Values{}
	if query != "" {
		values.Set(QueryParam, query)
	}
	if lang != "" {
		values.Set(directoryi18n.LangParam, lang)
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
