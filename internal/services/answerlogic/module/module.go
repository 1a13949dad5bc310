// Package module wires the selection endpoints into the API
package module

import (
	"time"

	"answerlog/internal/core/answer"
	"answerlog/internal/modkit"
	"answerlog/internal/modkit/httpkit"
	"answerlog/internal/services/answerlogic/domain"
	logichttp "answerlog/internal/services/answerlogic/http"
	logicsvc "answerlog/internal/services/answerlogic/service"
	"answerlog/internal/services/answerlogic/source"
)

// Options selects the answer store the module evaluates against
type Options struct {
	// Source is required
	Source answer.Store
	// Metrics wraps Source in a Metered decorator when set
	Metrics *source.Metrics
	// Now overrides the clock used for ages
	Now func() time.Time
}

// Ports holds the ports exposed by the selection module
type Ports struct {
	Selection domain.ServicePort
}

// Module serves /answer-logic and exports the selection service as a port
type Module struct {
	svc   logicsvc.Service
	ports Ports
}

var _ modkit.Module = (*Module)(nil)

// New constructs the answer-logic module; it panics without a Source
func New(deps modkit.Deps, opts Options) *Module {
	src := opts.Source
	if src == nil {
		panic("answer-logic module requires an answer source")
	}
	if opts.Metrics != nil {
		src = source.NewMetered(src, opts.Metrics)
	}
	svc := logicsvc.New(src, logicsvc.WithClock(opts.Now))
	return &Module{svc: svc, ports: Ports{Selection: svc}}
}

// Name implements modkit.Module
func (m *Module) Name() string { return "answer-logic" }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	modkit.Mount(r, "/answer-logic", func(rr httpkit.Router) { logichttp.Register(rr, m.svc) })
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
