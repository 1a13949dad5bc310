// Package module wires the meta endpoints into the API
package module

import (
	"context"
	"time"

	"answerlog/internal/core/version"
	"answerlog/internal/modkit"
	"answerlog/internal/modkit/httpkit"
	metahttp "answerlog/internal/services/api/meta/http"
)

// Options carries the values reported by /meta/backends
type Options struct {
	AnswersBackend  string
	SelectionSource string
}

// Module serves /meta; it exports no ports
type Module struct {
	deps metahttp.Deps
}

var _ modkit.Module = (*Module)(nil)

// New constructs the meta module; readiness pings whichever stores deps carry
func New(deps modkit.Deps, o Options) *Module {
	return &Module{deps: metahttp.Deps{
		ServiceName:     version.Info().Service,
		StartedAt:       time.Now(),
		Checks:          []metahttp.Check{check("pg", deps.PG), check("ch", deps.CH)},
		AnswersBackend:  o.AnswersBackend,
		SelectionSource: o.SelectionSource,
	}}
}

type pinger interface{ Ping(context.Context) error }

// check pings s when it is configured and can be pinged; otherwise readiness skips it
func check(name string, s any) metahttp.Check {
	c := metahttp.Check{Name: name}
	if p, ok := s.(pinger); ok {
		c.Ping = p.Ping
	}
	return c
}

// Name implements modkit.Module
func (m *Module) Name() string { return "meta" }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	modkit.Mount(r, "/meta", func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return nil }
