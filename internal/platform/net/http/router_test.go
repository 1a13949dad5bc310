package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"answerlog/internal/platform/config"
)

func TestRouter_RouteAndUse(t *testing.T) {
	srv := NewServer(config.New().Prefix("TEST_HTTP_"))
	r := srv.Router()

	r.Route("/api/v1", func(api Router) {
		api.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.Header().Set("X-Scope", "v1")
				next.ServeHTTP(w, req)
			})
		})
		api.Route("/answers", func(sub Router) {
			sub.Get("/", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(stdhttp.StatusTeapot) })
		})
	})
	r.Handle("/metrics", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusAccepted)
	}))

	cases := []struct {
		target string
		status int
		scope  string
	}{
		{"/api/v1/answers/", stdhttp.StatusTeapot, "v1"},
		{"/metrics", stdhttp.StatusAccepted, ""},
		{"/api/v2/answers/", stdhttp.StatusNotFound, ""},
	}
	for _, c := range cases {
		rr := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, c.target, nil))
		if rr.Code != c.status || rr.Header().Get("X-Scope") != c.scope {
			t.Fatalf("%s: status %d scope %q", c.target, rr.Code, rr.Header().Get("X-Scope"))
		}
	}
}

func TestMountProfiler(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		srv := NewServer(config.New().Prefix("TEST_HTTP_"))
		MountProfiler(srv.Router(), "/debug/", enabled)

		rr := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/cmdline", nil))
		if enabled && rr.Code != stdhttp.StatusOK {
			t.Fatalf("enabled: status %d", rr.Code)
		}
		if !enabled && rr.Code != stdhttp.StatusNotFound {
			t.Fatalf("disabled: status %d", rr.Code)
		}
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Setenv("TEST_RUN_PORT", "127.0.0.1:0")
	t.Setenv("TEST_RUN_SHUTDOWN_GRACE", "1s")
	srv := NewServer(config.New().Prefix("TEST_RUN_"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	t.Setenv("TEST_BAD_PORT", "not-an-addr")
	srv := NewServer(config.New().Prefix("TEST_BAD_"))
	if err := srv.Run(context.Background()); err == nil {
		t.Fatalf("expected listen error")
	}
}
