// Package directory hosts the browser-facing user directory service.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/userdirectory/internal/platform/timeouts"
	module "github.com/louisbranch/userdirectory/internal/services/directory/module"
	usersmodule "github.com/louisbranch/userdirectory/internal/services/directory/modules/users"
	"github.com/louisbranch/userdirectory/internal/services/directory/platform/httpx"
	"github.com/louisbranch/userdirectory/internal/services/directory/platform/observability"
	"github.com/louisbranch/userdirectory/internal/services/directory/routepath"
	directorystatic "github.com/louisbranch/userdirectory/internal/services/directory/static"
)

// Config defines startup inputs for the directory service.
type Config struct {
	HTTPAddr  string
	Directory module.Directory
	Logger    *log.Logger
	Now       func() time.Time
}

// Server hosts the directory HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger

	mu        sync.Mutex
	boundAddr string
}

// DefaultModules returns the modules mounted by NewHandler.
func DefaultModules() []module.Module {
	return []module.Module{usersmodule.New()}
}

// NewHandler builds the root handler with static assets, health and modules.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	deps := module.Dependencies{
		Directory: cfg.Directory,
		Logger:    logger,
		Now:       cfg.Now,
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServer(http.FS(directorystatic.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Healthz, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteText(w, http.StatusOK, "ok")
	})
	for _, m := range DefaultModules() {
		mount, err := m.Mount(deps)
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", m.ID(), err)
		}
		rootMux.Handle(mount.Prefix, mount.Handler)
	}
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger, routepath.Healthz, routepath.Static),
	), nil
}

// NewServer validates config and constructs a directory server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose directory handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          logger,
		},
	}, nil
}

// Addr returns the bound listen address once serving, and the configured
// address before that.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.boundAddr != "" {
		return s.boundAddr
	}
	return s.httpAddr
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled or the server stops.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("directory server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen directory http: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled, then shuts
// down gracefully within timeouts.Shutdown.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("directory server is nil")
	}
	if listener == nil {
		return errors.New("listener is required")
	}
	s.mu.Lock()
	s.boundAddr = listener.Addr().String()
	s.mu.Unlock()
	s.logger.Printf("directory listening addr=%s", listener.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown directory http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve directory http: %w", err)
	}
}

// Close stops the server without waiting for in-flight requests.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
