// Package module wires the raw answer log into the API
package module

import (
	"answerlog/internal/modkit"
	"answerlog/internal/modkit/httpkit"
	answershttp "answerlog/internal/services/answers/http"
	answersrepo "answerlog/internal/services/answers/repo"
	answerssvc "answerlog/internal/services/answers/service"
)

// Module serves /answers and exports the answer log as a port
type Module struct {
	svc     answerssvc.Service
	ports   Ports
	backend string
}

var _ modkit.Module = (*Module)(nil)

// New constructs the answers module on the backend chosen by opts
// an empty Backend falls back to config
func New(deps modkit.Deps, opts Options) *Module {
	if opts.Backend == "" {
		opts = FromConfig(deps.Cfg)
	}

	var r answersrepo.Repo
	switch opts.Backend {
	case BackendClickhouse:
		r = answersrepo.NewCH(deps.CH)
	default:
		opts.Backend = BackendPG
		r = answersrepo.NewPG(deps.PG)
	}
	svc := answerssvc.New(r)

	return &Module{
		svc:     svc,
		ports:   Ports{Store: adaptStore{svc: svc}},
		backend: opts.Backend,
	}
}

// Name implements modkit.Module
func (m *Module) Name() string { return "answers" }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	modkit.Mount(r, "/answers", func(rr httpkit.Router) { answershttp.Register(rr, m.svc) })
}

// Backend reports which store serves the answer log
func (m *Module) Backend() string { return m.backend }
