package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/text/message"

	directoryi18n "github.com/louisbranch/userdirectory/internal/services/directory/i18n"
)

// NetworkError reports a transport or connectivity failure.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError reports a non-success response status.
type HTTPError struct {
	Status     int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP Error: %d - %s", e.Status, e.StatusText)
}

// DataFormatError reports a body that is not a non-empty list of user objects.
// Detail narrows down which check failed and is only meant for logs.
type DataFormatError struct {
	Detail string
}

func (e *DataFormatError) Error() string {
	if strings.TrimSpace(e.Detail) == "" {
		return errNoUsersData
	}
	return errNoUsersData + " (" + e.Detail + ")"
}

const errNoUsersData = "No users found or invalid data format"

// classifyTransport wraps errors returned by the HTTP client.
func classifyTransport(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return &NetworkError{Err: err}
	}
	return err
}

// Message returns the English user-facing message for a fetch failure.
func Message(err error) string {
	return MessageFor(directoryi18n.DefaultPrinter(), err)
}

// Printer formats localized messages.
type Printer interface {
	Sprintf(key message.Reference, args ...any) string
}

// MessageFor returns the user-facing message for a fetch failure using p.
func MessageFor(p Printer, err error) string {
	if p == nil {
		p = directoryi18n.DefaultPrinter()
	}
	var (
		netErr    *NetworkError
		httpErr   *HTTPError
		formatErr *DataFormatError
		detail    string
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &netErr):
		detail = p.Sprintf(directoryi18n.ErrorNetworkKey)
	case errors.As(err, &httpErr):
		detail = p.Sprintf(directoryi18n.ErrorHTTPKey, httpErr.Status, httpErr.StatusText)
	case errors.As(err, &formatErr):
		detail = p.Sprintf(directoryi18n.ErrorNoUsersDataKey)
	default:
		detail = p.Sprintf(directoryi18n.ErrorUnexpectedKey)
	}
	return p.Sprintf(directoryi18n.ErrorPrefixKey, detail)
}
