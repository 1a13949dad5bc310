// @title         answerlog API
// @version       0.1.0
// @description   Read only answer log and population selection endpoints

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"answerlog/internal/platform/config"
	"answerlog/internal/platform/logger"
	phttp "answerlog/internal/platform/net/http"
	"answerlog/internal/platform/net/middleware"
	"answerlog/internal/platform/store"
	"answerlog/internal/platform/store/ch"
	"answerlog/internal/platform/store/pg"

	"answerlog/internal/services/api"
	answersmod "answerlog/internal/services/answers/module"
	logicmod "answerlog/internal/services/answerlogic/module"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	l := logger.Get()

	answers := answersmod.FromConfig(apiCfg)
	source := logicmod.SourceFromConfig(root.Prefix("ANSWER_LOGIC_"))

	cfg := store.Config{AppName: "answerlog-api"}
	switch answers.Backend {
	case answersmod.BackendClickhouse:
		cfg.UseCH = true
		cfg.CH = ch.Config{URL: chCfg.MustString("DBURL")}
	default:
		cfg.UsePG = true
		cfg.PG = pg.Config{
			URL:      pgCfg.MustString("DBURL"),
			MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 4)),
			Slow:     time.Duration(pgCfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
			LogSQL:   pgCfg.MayBool("LOG_SQL", true),
		}
	}

	st, err := store.Open(ctx, cfg, *l)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	err = api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
			Answers:        answers,
			Source:         source,
			HTTP: middleware.Options{
				Timeout: apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
				Slow:    apiCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
			},
		},
	)
	if err != nil {
		l.Panic().Err(err).Msg("api.Mount failed")
	}

	l.Info().
		Str("answers_backend", answers.Backend).
		Str("selection_source", source.Kind).
		Msg("answerlog-api starting")

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
