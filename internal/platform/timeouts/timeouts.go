// Package timeouts holds the durations shared by the server, the fetcher and
// the view-state controller.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// UpstreamRequest caps a single request to the users endpoint.
const UpstreamRequest = 10 * time.Second

// MinimumLoading is how long the loading state stays visible before the
// users request is issued.
const MinimumLoading = 500 * time.Millisecond

// StatePoll is how often the browser polls while a fetch is in flight.
const StatePoll = 300 * time.Millisecond
