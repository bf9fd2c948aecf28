package templates

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/louisbranch/userdirectory/internal/platform/timeouts"
	"github.com/louisbranch/userdirectory/internal/services/directory/fetcher"
	directoryi18n "github.com/louisbranch/userdirectory/internal/services/directory/i18n"
	"github.com/louisbranch/userdirectory/internal/services/directory/routepath"
	"github.com/louisbranch/userdirectory/internal/services/directory/state"
	"github.com/louisbranch/userdirectory/internal/services/directory/users"
)

// StatePanelID is the element id htmx swaps when the view state changes.
const StatePanelID = "directory-state"

// StateView is the input of the state panel. The embedded snapshot holds
// every loaded user; Matches holds the ones matching Query.
type StateView struct {
	state.Snapshot
	Matches []users.User
	Query   string
	Lang    string
	Now     time.Time
}

// NewStateView builds the panel input for snapshot filtered by query.
// Fragment URLs carry lang so follow-up requests keep the page language.
func NewStateView(snap state.Snapshot, query, lang string, now time.Time) StateView {
	return StateView{
		Snapshot: snap,
		Matches:  users.Filter(snap.Users, query),
		Query:    query,
		Lang:     lang,
		Now:      now,
	}
}

func (v StateView) loading() bool {
	return v.View.Kind == state.KindLoading || v.View.Kind == state.KindUnset
}

// StatePanel renders the spinner, the error panel and the user grid with
// exactly one of them visible. While loading the panel polls for the next
// state.
func StatePanel(v StateView) templ.Component {
	attrs := []Attr{A("id", StatePanelID), Class("directory-state", "state-"+v.View.Kind.String())}
	if v.loading() {
		attrs = append(attrs,
			A("hx-get", routepath.StateWithQuery(v.Query, v.Lang)),
			A("hx-trigger", "load delay:"+itoa(int(timeouts.StatePoll.Milliseconds()))+"ms"),
			A("hx-swap", "outerHTML"),
		)
	}
	success := v.View.Kind == state.KindSuccess
	failed := v.View.Kind == state.KindError
	return El("section", attrs,
		El("div", append([]Attr{A("id", "loadingSpinner"), Class("loading-spinner"), A("role", "status")}, HiddenIf(!v.loading())...),
			El("div", []Attr{Class("spinner")}),
			El("p", nil, T(directoryi18n.LoadingKey)),
		),
		El("div", append([]Attr{A("id", "errorMessage"), Class("error-message"), A("role", "alert")}, HiddenIf(!failed)...),
			icon(iconError),
			El("p", []Attr{A("id", "errorText")}, errorText(v.View)),
			El("button", []Attr{
				A("id", "retryBtn"), A("type", "button"), Class("retry-btn"),
				A("hx-post", routepath.WithLang(routepath.Retry, v.Lang)), A("hx-target", "#"+StatePanelID),
				A("hx-swap", "outerHTML"), A("hx-include", "#search"),
			}, T(directoryi18n.RetryLabelKey)),
		),
		El("p", append([]Attr{Class("summary")}, HiddenIf(!success)...), summary(v)),
		El("div", append([]Attr{A("id", "userContainer"), Class("user-container")}, HiddenIf(!success)...),
			UserList(v.Matches),
		),
	)
}

func errorText(view state.ViewState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		message := view.Message
		if view.Err != nil {
			message = fetcher.MessageFor(LocalizerFrom(ctx), view.Err)
		}
		return Text(message).Render(ctx, w)
	})
}

func summary(v StateView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := LocalizerFrom(ctx)
		updated := loc.Sprintf(directoryi18n.NeverUpdatedKey)
		if v.Fetched() {
			now := v.Now
			if now.IsZero() {
				now = time.Now()
			}
			updated = directoryi18n.RelTime(LanguageFrom(ctx), v.FetchedAt, now)
		}
		return Text(loc.Sprintf(directoryi18n.SummaryKey, len(v.Matches), len(v.Users), updated)).Render(ctx, w)
	})
}
