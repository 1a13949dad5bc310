package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAccessLog_PassesResponseThrough(t *testing.T) {
	for _, slow := range []time.Duration{time.Hour, time.Nanosecond} {
		h := AccessLog(slow)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, "answer store down")
		}))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/answer-logic/map", nil))
		if rr.Code != http.StatusServiceUnavailable || rr.Body.String() != "answer store down" {
			t.Fatalf("slow=%v: %d %q", slow, rr.Code, rr.Body.String())
		}
	}
}
