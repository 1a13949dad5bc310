// Package middleware assembles the chi middleware chain in front of the API
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options tunes the API chain; zero values pick the defaults noted per field
type Options struct {
	// Timeout cancels the request context, 30s
	Timeout time.Duration
	// Slow requests are logged at warn, 500ms
	Slow time.Duration
	// AllowedOrigins for CORS, any origin when empty
	AllowedOrigins []string
}

// API returns the chain mounted in front of every /api/v1 route
func API(o Options) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 500 * time.Millisecond
	}
	return []func(http.Handler) http.Handler{
		chimw.RequestID,
		chimw.RealIP,
		AccessLog(o.Slow),
		Recover,
		chimw.NoCache,
		cors.Handler(cors.Options{
			AllowedOrigins: o.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", chimw.RequestIDHeader},
			ExposedHeaders: []string{chimw.RequestIDHeader},
		}),
		chimw.GetHead,
		chimw.StripSlashes,
		chimw.Compress(flate.BestSpeed),
		chimw.Timeout(o.Timeout),
	}
}
