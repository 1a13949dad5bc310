// Package api provides the HTTP API for the application
package api

import (
	"answerlog/internal/platform/config"
	phttp "answerlog/internal/platform/net/http"
	"answerlog/internal/platform/net/middleware"
	"answerlog/internal/platform/store"

	"answerlog/internal/modkit"
	"answerlog/internal/modkit/httpkit"
	"answerlog/internal/modkit/swaggerkit"

	"answerlog/internal/core/answer"
	logicmod "answerlog/internal/services/answerlogic/module"
	"answerlog/internal/services/answerlogic/source"
	answersmod "answerlog/internal/services/answers/module"
	metamod "answerlog/internal/services/api/meta/module"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool

	// Answers picks the raw answer log backend; zero reads CORE_API_ANSWERS_BACKEND
	Answers answersmod.Options
	// Source picks where selection reads answers from
	Source logicmod.SourceConfig
	// Registry receives the fetch metrics and backs /metrics; nil builds a fresh one per Mount
	Registry *prometheus.Registry
	// HTTP tunes the /api/v1 middleware chain
	HTTP middleware.Options
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) error {
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	answers := answersmod.New(deps, opt.Answers)
	local := modkit.MustPortsOf[answer.Store](answers)

	src, err := opt.Source.Resolve(local)
	if err != nil {
		return err
	}

	reg := opt.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	var metrics *source.Metrics
	if opt.EnableMetrics {
		metrics = source.NewMetrics(reg)
	}

	logic := logicmod.New(deps, logicmod.Options{Source: src, Metrics: metrics})

	sourceKind := opt.Source.Kind
	if sourceKind == "" {
		sourceKind = logicmod.SourceLocal
	}

	mods := []modkit.Module{
		metamod.New(deps, metamod.Options{
			AnswersBackend:  answers.Backend(),
			SelectionSource: sourceKind,
		}),
		answers,
		logic,
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}
	httpkit.MountAPIV1(r, opt.HTTP, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
	return nil
}
