package directory

import (
	"bytes"
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/userdirectory/internal/services/directory/routepath"
	"github.com/louisbranch/userdirectory/internal/services/directory/state"
	"github.com/louisbranch/userdirectory/internal/services/directory/users"
)

type staticFetcher struct {
	list []users.User
}

func (f staticFetcher) FetchUsers(context.Context) ([]users.User, error) {
	return f.list, nil
}

func newTestHandler(t *testing.T, logs io.Writer) (http.Handler, *state.Controller) {
	t.Helper()
	ctrl := state.NewController(staticFetcher{list: []users.User{{ID: 1, Name: "Leanne Graham", Username: "Bret"}}},
		state.WithLoadingDelay(0))
	if logs == nil {
		logs = io.Discard
	}
	h, err := NewHandler(Config{Directory: ctrl, Logger: log.New(logs, "", 0)})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h, ctrl
}

func TestNewHandlerRequiresDirectory(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{}); err == nil {
		t.Fatalf("expected error without directory")
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Healthz, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestStaticAssetsServed(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, nil)
	for _, name := range []string{"app.css", "app.js"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.StaticAsset(name), nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want %d", name, rr.Code, http.StatusOK)
		}
		if rr.Body.Len() == 0 {
			t.Fatalf("%s body is empty", name)
		}
	}
}

func TestRequestIDEchoedAndLogged(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h, _ := newTestHandler(t, &logs)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Root, nil))
	requestID := rr.Header().Get("X-Request-ID")
	if requestID == "" {
		t.Fatalf("expected request id header")
	}
	if !strings.Contains(logs.String(), "request_id="+requestID) {
		t.Fatalf("expected log line with request id, got %q", logs.String())
	}
}

func TestReloadThenStateShowsUsers(t *testing.T) {
	t.Parallel()

	h, ctrl := newTestHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.Reload, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("reload status = %d, want %d", rr.Code, http.StatusOK)
	}
	ctrl.Wait()

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.State, nil))
	if !strings.Contains(rr.Body.String(), "Leanne Graham") {
		t.Fatalf("expected user in state panel, got %q", rr.Body.String())
	}
}

func TestListenAndServeNilServer(t *testing.T) {
	t.Parallel()

	var s *Server
	if err := s.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty HTTP address")
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := NewServer(ctx, Config{
		HTTPAddr:  "127.0.0.1:0",
		Directory: state.NewController(staticFetcher{}),
		Logger:    log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()
	if server.Addr() != "127.0.0.1:0" {
		t.Fatalf("Addr() before serving = %q", server.Addr())
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ctx, listener)
	}()

	url := "http://" + listener.Addr().String() + routepath.Healthz
	var resp *http.Response
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err = http.Get(url)
		if err == nil || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET healthz: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if got := server.Addr(); got != listener.Addr().String() {
		t.Fatalf("Addr() = %q, want %q", got, listener.Addr().String())
	}

	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop on cancel")
	}
}

func TestListenAndServeReportsListenError(t *testing.T) {
	t.Parallel()

	server := &Server{
		httpAddr:   "127.0.0.1:-1",
		httpServer: &http.Server{},
		logger:     log.New(io.Discard, "", 0),
	}
	err := server.ListenAndServe(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "listen directory http") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServeRequiresListener(t *testing.T) {
	t.Parallel()

	server := &Server{httpServer: &http.Server{}, logger: log.New(io.Discard, "", 0)}
	if err := server.Serve(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil listener")
	}
}
