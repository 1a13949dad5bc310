// Package modkit holds what the API modules share: their deps, their mount
// shape and typed lookups into each other's ports
package modkit

import (
	"net/http"
	"reflect"

	"answerlog/internal/modkit/httpkit"
	"answerlog/internal/platform/config"
	"answerlog/internal/platform/store"
)

// Module is an API module that owns a route prefix and may expose ports
type Module interface {
	Name() string
	MountRoutes(r httpkit.Router)
	// Ports returns a struct of port interfaces, or nil
	Ports() any
}

// Deps are handed to every module constructor; nil stores are not configured
type Deps struct {
	Cfg config.Conf
	PG  store.Querier
	CH  store.Clickhouse
}

// Mount registers routes under prefix behind the given middlewares
func Mount(r httpkit.Router, prefix string, register func(httpkit.Router), mws ...func(http.Handler) http.Handler) {
	if prefix == "" || prefix[0] != '/' {
		panic("modkit: module prefix must start with /: " + prefix)
	}
	r.Route(prefix, func(rr httpkit.Router) {
		for _, mw := range mws {
			rr.Use(mw)
		}
		register(rr)
	})
}

// PortsOf finds the first value in m's ports that implements T
// the ports value itself is tried first, then its exported struct fields
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() || (f.Kind() == reflect.Interface && f.IsNil()) {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for wiring that cannot proceed without the port
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic("modkit: module " + m.Name() + " has no port of the requested type")
	}
	return v
}
