// Package fetcher retrieves user records from the remote users endpoint and
// classifies every failure into a small error taxonomy.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/userdirectory/internal/platform/timeouts"
	"github.com/louisbranch/userdirectory/internal/services/directory/users"
)

// DefaultURL is the public users endpoint.
const DefaultURL = "https://jsonplaceholder.typicode.com/users"

const (
	maxBodyBytes = 4 << 20
	tracerName   = "github.com/louisbranch/userdirectory/internal/services/directory/fetcher"
)

// Config configures a Client.
type Config struct {
	// URL is the users endpoint. Defaults to DefaultURL.
	URL string
	// HTTPClient issues the request. Defaults to a client without its own timeout.
	HTTPClient *http.Client
	// Timeout caps a single request. Zero uses the default.
	Timeout time.Duration
}

// Client fetches users from a fixed endpoint.
type Client struct {
	url     string
	http    *http.Client
	timeout time.Duration
	tracer  trace.Tracer
}

// New builds a Client from cfg.
func New(cfg Config) *Client {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = DefaultURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.UpstreamRequest
	}
	return &Client{
		url:     url,
		http:    httpClient,
		timeout: timeout,
		tracer:  otel.Tracer(tracerName),
	}
}

// URL returns the endpoint the client reads from.
func (c *Client) URL() string {
	return c.url
}

// FetchUsers issues one GET request and returns the decoded users in
// response order.
func (c *Client) FetchUsers(ctx context.Context) (_ []users.User, err error) {
	ctx, span := c.tracer.Start(ctx, "directory.fetch_users",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url.full", c.url)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build users request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{Status: resp.StatusCode, StatusText: statusText(resp)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, classifyTransport(err)
	}
	if len(body) > maxBodyBytes {
		return nil, &DataFormatError{Detail: "body exceeds limit"}
	}
	list, err := Decode(body)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("directory.users.count", len(list)))
	return list, nil
}

// Decode validates that body is a non-empty JSON array of objects and decodes
// it into users.
func Decode(body []byte) ([]users.User, error) {
	if !gjson.ValidBytes(body) {
		return nil, &DataFormatError{Detail: "body is not valid JSON"}
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, &DataFormatError{Detail: "body is not an array"}
	}
	items := parsed.Array()
	if len(items) == 0 {
		return nil, &DataFormatError{Detail: "array is empty"}
	}
	for i, item := range items {
		if !item.IsObject() {
			return nil, &DataFormatError{Detail: fmt.Sprintf("record %d is not an object", i)}
		}
	}

	var list []users.User
	if err := json.Unmarshal(body, &list); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &DataFormatError{Detail: fmt.Sprintf("field %s has type %s", typeErr.Field, typeErr.Value)}
		}
		return nil, &DataFormatError{Detail: err.Error()}
	}
	return list, nil
}

// statusText prefers the reason phrase sent by the server.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(resp.Status)
	if code := fmt.Sprintf("%d", resp.StatusCode); strings.HasPrefix(text, code) {
		text = strings.TrimSpace(strings.TrimPrefix(text, code))
	}
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
