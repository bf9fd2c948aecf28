package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	directoryi18n "github.com/louisbranch/userdirectory/internal/services/directory/i18n"
	"github.com/louisbranch/userdirectory/internal/services/directory/routepath"
)

const (
	htmxScriptURL   = "https://unpkg.com/htmx.org@2.0.4"
	fontAwesomeURL  = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"
	searchDebounce  = "input changed delay:200ms, search"
	searchInputID   = "search"
	reloadButtonID  = "reloadBtn"
	defaultPageLang = "en-US"
)

// PageView is the input of the full page.
type PageView struct {
	Lang  string
	State StateView
}

// Page renders the complete document around the state panel.
func Page(v PageView) templ.Component {
	lang := v.Lang
	if lang == "" {
		lang = defaultPageLang
	}
	return Group(
		doctype(),
		El("html", []Attr{A("lang", lang)},
			El("head", nil,
				Void("meta", A("charset", "utf-8")),
				Void("meta", A("name", "viewport"), A("content", "width=device-width, initial-scale=1")),
				El("title", nil, T(directoryi18n.TitleKey)),
				Void("link", A("rel", "stylesheet"), A("href", fontAwesomeURL)),
				Void("link", A("rel", "stylesheet"), A("href", routepath.StaticAsset("app.css"))),
				El("script", []Attr{A("src", htmxScriptURL), Flag("defer")}),
				El("script", []Attr{A("src", routepath.StaticAsset("app.js")), Flag("defer")}),
			),
			El("body", nil,
				El("main", []Attr{Class("container")}, MainContent(v.State)),
			),
		),
	)
}

// MainContent renders everything inside main: header, controls and state panel.
func MainContent(v StateView) templ.Component {
	return Group(
		El("header", []Attr{Class("app-header")},
			El("div", []Attr{Class("titles")},
				El("h1", nil, T(directoryi18n.TitleKey)),
				El("p", []Attr{Class("subtitle")}, T(directoryi18n.SubtitleKey)),
			),
			El("div", []Attr{Class("controls")},
				searchInput(v.Query, v.Lang),
				El("button", []Attr{
					A("id", reloadButtonID), A("type", "button"), Class("reload-btn"),
					A("hx-post", routepath.WithLang(routepath.Reload, v.Lang)), A("hx-target", "#"+StatePanelID),
					A("hx-swap", "outerHTML"), A("hx-include", "#"+searchInputID),
				}, icon(iconReload), T(directoryi18n.ReloadLabelKey)),
			),
		),
		StatePanel(v),
	)
}

func searchInput(query, lang string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		placeholder := LocalizerFrom(ctx).Sprintf(directoryi18n.SearchPlaceholderKey)
		return El("label", []Attr{Class("search")},
			icon(iconSearch),
			Void("input",
				A("id", searchInputID), A("type", "search"), A("name", routepath.QueryParam),
				A("value", query), A("placeholder", placeholder), A("aria-label", placeholder),
				A("autocomplete", "off"),
				A("hx-get", routepath.StateWithQuery("", lang)), A("hx-trigger", searchDebounce),
				A("hx-target", "#"+StatePanelID), A("hx-swap", "outerHTML"),
			),
		).Render(ctx, w)
	})
}

func doctype() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<!doctype html>")
		return err
	})
}
