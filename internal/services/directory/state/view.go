// Package state owns the directory application state: the users from the last
// successful fetch and the view state shown to the browser.
package state

import (
	"time"

	"github.com/louisbranch/userdirectory/internal/services/directory/users"
)

// Kind names a mutually exclusive view mode.
type Kind int

const (
	// KindUnset is only observed before the first fetch starts.
	KindUnset Kind = iota
	KindLoading
	KindError
	KindSuccess
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindError:
		return "error"
	case KindSuccess:
		return "success"
	default:
		return "unset"
	}
}

// ViewState is the active view mode. Err and Message are set only for KindError.
type ViewState struct {
	Kind    Kind
	Message string
	Err     error
}

// Loading returns the loading view state.
func Loading() ViewState { return ViewState{Kind: KindLoading} }

// Success returns the success view state.
func Success() ViewState { return ViewState{Kind: KindSuccess} }

// Failed returns an error view state carrying message and its cause.
func Failed(message string, err error) ViewState {
	return ViewState{Kind: KindError, Message: message, Err: err}
}

// Snapshot is a copy of the application state safe to render.
type Snapshot struct {
	Users     []users.User
	View      ViewState
	FetchedAt time.Time
}

// Fetched reports whether at least one fetch has succeeded.
func (s Snapshot) Fetched() bool {
	return !s.FetchedAt.IsZero()
}
