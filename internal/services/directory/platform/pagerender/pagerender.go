// Package pagerender centralizes how directory components are written to
// responses for full-page and HTMX requests.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	directoryi18n "github.com/louisbranch/userdirectory/internal/services/directory/i18n"
	apperrors "github.com/louisbranch/userdirectory/internal/services/directory/platform/errors"
	"github.com/louisbranch/userdirectory/internal/services/directory/platform/httpx"
	"github.com/louisbranch/userdirectory/internal/services/directory/templates"
)

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Page describes a response that has a full document and an HTMX fragment.
type Page struct {
	StatusCode int
	Full       templ.Component
	Fragment   templ.Component
}

// WritePage writes page.Fragment for HTMX requests and page.Full otherwise.
// A missing side falls back to the other one.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	target := page.Full
	if httpx.IsHTMXRequest(r) && page.Fragment != nil {
		target = page.Fragment
	}
	if target == nil {
		target = page.Fragment
	}
	return WriteComponent(w, r, page.StatusCode, target)
}

// WriteComponent renders c in the request language and writes it as HTML.
// Nothing is written when rendering fails.
func WriteComponent(w http.ResponseWriter, r *http.Request, statusCode int, c templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if c == nil {
		c = emptyComponent{}
	}
	ctx := templates.WithLanguage(httpx.RequestContext(r), directoryi18n.ResolveTag(r))
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return apperrors.Wrap(apperrors.KindRender, "render component", err)
	}
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}
