// Package httpkit is the route registration surface module handlers use
package httpkit

import (
	"net/http"

	phttp "answerlog/internal/platform/net/http"
	"answerlog/internal/platform/net/middleware"
)

// Router is the router seam modules mount on
type Router = phttp.Router

// Get registers a handler that returns data or an error for the envelope
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.Endpoint(h))
}

// GetParams is Get with path and query params bound into T first
func GetParams[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, phttp.ParamsEndpoint(h))
}

// MountAPIV1 opens /api/v1 behind the API middleware chain
func MountAPIV1(r Router, o middleware.Options, fn func(api Router)) {
	r.Route("/api/v1", func(api Router) {
		api.Use(middleware.API(o)...)
		fn(api)
	})
}
