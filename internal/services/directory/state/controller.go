package state

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/louisbranch/userdirectory/internal/platform/requestctx"
	"github.com/louisbranch/userdirectory/internal/platform/timeouts"
	"github.com/louisbranch/userdirectory/internal/services/directory/fetcher"
	"github.com/louisbranch/userdirectory/internal/services/directory/users"
)

// UsersFetcher loads the full ordered list of users.
type UsersFetcher interface {
	FetchUsers(ctx context.Context) ([]users.User, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLoadingDelay sets the minimum time the loading state stays visible
// before the request is issued.
func WithLoadingDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.loadingDelay = d
		}
	}
}

// WithSleep replaces the wait used for the loading delay.
func WithSleep(sleep func(context.Context, time.Duration) error) Option {
	return func(c *Controller) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// WithLogger sets the logger used for fetch outcomes.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the time source used to stamp successful fetches.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// Controller coordinates fetches and exposes snapshots of the state.
//
// Every fetch takes a token. Only the fetch holding the latest token may
// write, so an older fetch finishing late cannot overwrite a newer outcome.
type Controller struct {
	fetcher      UsersFetcher
	loadingDelay time.Duration
	sleep        func(context.Context, time.Duration) error
	logger       *log.Logger
	now          func() time.Time

	mu        sync.Mutex
	token     uint64
	users     []users.User
	view      ViewState
	fetchedAt time.Time

	inflight sync.WaitGroup
}

// NewController builds a Controller reading users through f.
func NewController(f UsersFetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher:      f,
		loadingDelay: timeouts.MinimumLoading,
		sleep:        sleepContext,
		logger:       log.New(io.Discard, "", 0),
		now:          time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// FetchUsers runs one fetch: it shows the loading state, waits the minimum
// loading delay, requests the users and moves to success or error. The
// returned error is informational; the outcome is already in the view state.
func (c *Controller) FetchUsers(ctx context.Context) error {
	return c.fetch(ctx, c.begin())
}

// Reload starts a fetch in the background. The loading state is visible by
// the time Reload returns.
func (c *Controller) Reload(ctx context.Context) {
	token := c.begin()
	c.logger.Printf("reload requested token=%d request_id=%s", token, requestctx.RequestIDFromContext(ctx))
	ctx = context.WithoutCancel(ctx)
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		_ = c.fetch(ctx, token)
	}()
}

// Wait blocks until every background fetch started by Reload returns.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Users:     append([]users.User(nil), c.users...),
		View:      c.view,
		FetchedAt: c.fetchedAt,
	}
}

// Search filters the last fetched users by query without fetching.
func (c *Controller) Search(query string) []users.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return users.Filter(c.users, query)
}

func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token++
	c.view = Loading()
	return c.token
}

func (c *Controller) fetch(ctx context.Context, token uint64) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.New("fetch users panicked")
			c.logger.Printf("fetch users panic token=%d panic=%v", token, recovered)
			c.fail(token, err)
		}
	}()

	if c.fetcher == nil {
		err = errors.New("users fetcher is not configured")
		c.fail(token, err)
		return err
	}
	if err = c.sleep(ctx, c.loadingDelay); err != nil {
		c.fail(token, err)
		return err
	}
	list, err := c.fetcher.FetchUsers(ctx)
	if err != nil {
		c.fail(token, err)
		return err
	}
	if list == nil {
		list = []users.User{}
	}
	c.succeed(token, list)
	return nil
}

func (c *Controller) succeed(token uint64, list []users.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.token {
		c.logger.Printf("fetch users stale token=%d latest=%d outcome=success", token, c.token)
		return
	}
	c.users = list
	c.fetchedAt = c.now()
	c.view = Success()
	c.logger.Printf("fetch users ok token=%d count=%d", token, len(list))
}

func (c *Controller) fail(token uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.token {
		c.logger.Printf("fetch users stale token=%d latest=%d outcome=error", token, c.token)
		return
	}
	c.view = Failed(fetcher.Message(err), err)
	c.logger.Printf("fetch users failed token=%d err=%v", token, err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
