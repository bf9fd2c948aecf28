package users

import (
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/louisbranch/userdirectory/internal/platform/requestctx"
	directoryi18n "github.com/louisbranch/userdirectory/internal/services/directory/i18n"
	module "github.com/louisbranch/userdirectory/internal/services/directory/module"
	apperrors "github.com/louisbranch/userdirectory/internal/services/directory/platform/errors"
	"github.com/louisbranch/userdirectory/internal/services/directory/platform/httpx"
	"github.com/louisbranch/userdirectory/internal/services/directory/platform/pagerender"
	"github.com/louisbranch/userdirectory/internal/services/directory/routepath"
	"github.com/louisbranch/userdirectory/internal/services/directory/templates"
)

type handlers struct {
	directory module.Directory
	logger    *log.Logger
	now       func() time.Time
}

func newHandlers(deps module.Dependencies) handlers {
	h := handlers{directory: deps.Directory, logger: deps.Logger, now: deps.Now}
	if h.logger == nil {
		h.logger = log.New(io.Discard, "", 0)
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, err := h.stateView(r)
	if err != nil {
		h.write(w, r, err)
		return
	}
	page := pagerender.Page{
		Full:     templates.Page(templates.PageView{Lang: view.Lang, State: view}),
		Fragment: templates.MainContent(view),
	}
	h.write(w, r, pagerender.WritePage(w, r, page))
}

func (h handlers) handleState(w http.ResponseWriter, r *http.Request) {
	view, err := h.stateView(r)
	if err != nil {
		h.write(w, r, err)
		return
	}
	h.writeComponent(w, r, templates.StatePanel(view))
}

func (h handlers) handleUsers(w http.ResponseWriter, r *http.Request) {
	query, err := searchQuery(r)
	if err != nil {
		h.write(w, r, err)
		return
	}
	h.writeComponent(w, r, templates.UserList(h.directory.Search(query)))
}

// handleReload serves both the reload and the retry control. A malformed
// form is rejected before any fetch starts.
func (h handlers) handleReload(w http.ResponseWriter, r *http.Request) {
	query, err := searchQuery(r)
	if err != nil {
		h.write(w, r, err)
		return
	}
	h.directory.Reload(r.Context())
	h.writeComponent(w, r, templates.StatePanel(h.newStateView(r, query)))
}

func (h handlers) stateView(r *http.Request) (templates.StateView, error) {
	query, err := searchQuery(r)
	if err != nil {
		return templates.StateView{}, err
	}
	return h.newStateView(r, query), nil
}

func (h handlers) newStateView(r *http.Request, query string) templates.StateView {
	lang := directoryi18n.ResolveTag(r).String()
	return templates.NewStateView(h.directory.Snapshot(), query, lang, h.now())
}

func (h handlers) writeComponent(w http.ResponseWriter, r *http.Request, c templ.Component) {
	h.write(w, r, pagerender.WriteComponent(w, r, http.StatusOK, c))
}

func (h handlers) write(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	h.logger.Printf("request failed path=%s kind=%s request_id=%s err=%v", r.URL.Path, apperrors.KindOf(err), requestctx.RequestIDFromContext(r.Context()), err)
	httpx.WriteError(w, err)
}

func searchQuery(r *http.Request) (string, error) {
	if r == nil {
		return "", nil
	}
	if err := r.ParseForm(); err != nil {
		return "", apperrors.Wrap(apperrors.KindInvalidInput, "parse form", err)
	}
	return strings.TrimSpace(r.Form.Get(routepath.QueryParam)), nil
}
