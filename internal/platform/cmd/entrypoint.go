// Package cmd holds the startup plumbing shared by service commands: config
// loading and a run loop wrapped in tracing setup and teardown.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/userdirectory/internal/platform/config"
	"github.com/louisbranch/userdirectory/internal/platform/otel"
)

// ServiceDirectory names the directory service in telemetry and logs.
const ServiceDirectory = "directory"

const defaultTelemetryFlush = 5 * time.Second

// TelemetrySetup installs tracing for a service and returns its shutdown.
type TelemetrySetup func(ctx context.Context, service string) (func(context.Context) error, error)

// RunOptions controls RunWithTelemetryAndOptions.
type RunOptions struct {
	// ShutdownTimeout bounds the final span flush. Zero means five seconds.
	ShutdownTimeout time.Duration
	// Setup defaults to otel.Setup.
	Setup TelemetrySetup
	// Logger receives shutdown failures. Defaults to log.Default().
	Logger *log.Logger
}

// ParseConfig fills cfg from its env struct tags.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses args into fs. Flags bound to config fields after
// ParseConfig override the environment.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	return nil
}

// RunWithTelemetry runs service with default options.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions installs tracing, runs the service loop and
// flushes spans once the loop returns.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	switch {
	case service == "":
		return errors.New("service name is required")
	case run == nil:
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if options.Setup == nil {
		options.Setup = otel.Setup
	}
	if options.Logger == nil {
		options.Logger = log.Default()
	}
	if options.ShutdownTimeout <= 0 {
		options.ShutdownTimeout = defaultTelemetryFlush
	}

	shutdown, err := options.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("%s telemetry: %w", service, err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), options.ShutdownTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			options.Logger.Printf("telemetry shutdown service=%s err=%v", service, err)
		}
	}()
	return run(ctx)
}
