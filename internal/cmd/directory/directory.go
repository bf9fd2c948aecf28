// Package directory parses directory service flags and launches the service.
package directory

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/louisbranch/userdirectory/internal/platform/cmd"
	server "github.com/louisbranch/userdirectory/internal/services/directory"
	"github.com/louisbranch/userdirectory/internal/services/directory/fetcher"
	"github.com/louisbranch/userdirectory/internal/services/directory/state"
)

// Config holds directory command configuration.
type Config struct {
	HTTPAddr     string        `env:"USER_DIRECTORY_HTTP_ADDR" envDefault:"localhost:8080"`
	UsersURL     string        `env:"USER_DIRECTORY_USERS_URL" envDefault:"https://jsonplaceholder.typicode.com/users"`
	LoadingDelay time.Duration `env:"USER_DIRECTORY_LOADING_DELAY" envDefault:"500ms"`
	FetchTimeout time.Duration `env:"USER_DIRECTORY_FETCH_TIMEOUT" envDefault:"10s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag set is required")
	}
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.UsersURL, "users-url", cfg.UsersURL, "Users endpoint URL")
	fs.DurationVar(&cfg.LoadingDelay, "loading-delay", cfg.LoadingDelay, "Minimum time the loading state is shown")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", cfg.FetchTimeout, "Timeout for a single users request")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.LoadingDelay < 0 {
		return Config{}, fmt.Errorf("loading delay must not be negative: %s", cfg.LoadingDelay)
	}
	if cfg.FetchTimeout < 0 {
		return Config{}, fmt.Errorf("fetch timeout must not be negative: %s", cfg.FetchTimeout)
	}
	return cfg, nil
}

// Run starts the directory web service and triggers the first load.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDirectory, func(ctx context.Context) error {
		return serve(ctx, cfg, log.Default())
	})
}

func serve(ctx context.Context, cfg Config, logger *log.Logger) error {
	client := newClient(cfg)
	ctrl := newController(client, cfg, logger)
	srv, err := server.NewServer(ctx, server.Config{
		HTTPAddr:  cfg.HTTPAddr,
		Directory: ctrl,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	ctrl.Reload(ctx)
	logger.Printf("directory starting users_url=%s loading_delay=%s fetch_timeout=%s", client.URL(), cfg.LoadingDelay, cfg.FetchTimeout)
	err = srv.ListenAndServe(ctx)
	ctrl.Wait()
	return err
}

func newClient(cfg Config) *fetcher.Client {
	return fetcher.New(fetcher.Config{URL: cfg.UsersURL, Timeout: cfg.FetchTimeout})
}

func newController(client *fetcher.Client, cfg Config, logger *log.Logger) *state.Controller {
	return state.NewController(client,
		state.WithLoadingDelay(cfg.LoadingDelay),
		state.WithLogger(logger),
	)
}
