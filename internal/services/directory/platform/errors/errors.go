// Package errors classifies failures of the directory HTTP layer so handlers
// can pick a response status without inspecting causes.
package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind is the class of an HTTP-layer failure.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindRender       Kind = "render"
	KindInvalidInput Kind = "invalid_input"
)

var statusByKind = map[Kind]int{
	KindRender:       http.StatusInternalServerError,
	KindInvalidInput: http.StatusBadRequest,
}

// Error records the operation that failed and why.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap builds an Error around err. A nil err stays nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the outermost Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// HTTPStatus maps err to a response status. Unclassified errors are 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if status, ok := statusByKind[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
