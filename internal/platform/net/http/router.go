package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the routing surface modules mount on; the API is read only so only GET is exposed
type Router interface {
	Get(pattern string, h http.HandlerFunc)
	Handle(pattern string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))
}

type chiRouter struct{ r chi.Router }

// AdaptChi exposes a chi router (root mux or subrouter) as a Router
func AdaptChi(r chi.Router) Router { return chiRouter{r: r} }

func (c chiRouter) Get(p string, h http.HandlerFunc)           { c.r.Get(p, h) }
func (c chiRouter) Handle(p string, h http.Handler)            { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Route(p string, fn func(Router)) {
	c.r.Route(p, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}
