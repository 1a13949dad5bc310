// Package logger owns the process zerolog logger and its request scoped children
package logger

import (
	"context"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"answerlog/internal/platform/config/raw"
	pnet "answerlog/internal/platform/net"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the zerolog logger
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level      string // trace debug info warn error; anything else is debug
	Format     string // console or json
	Service    string
	WithCaller bool
	Writer     io.Writer // stdout when nil
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE and LOG_CALLER
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:      env.Get("LEVEL", "debug"),
		Format:     env.Get("FORMAT", "console"),
		Service:    env.Get("SERVICE", ""),
		WithCaller: env.Bool("CALLER", false),
	}
}

var (
	once sync.Once
	root atomic.Pointer[zerolog.Logger]
)

// Init builds the root logger; only the first call has an effect
func Init(opt Options) {
	once.Do(func() { root.Store(build(opt)) })
}

func build(opt Options) *Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(opt.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}
	w := opt.Writer
	if w == nil {
		w = os.Stdout
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	zc := zerolog.New(w).Level(lvl).With().Timestamp()
	if opt.Service != "" {
		zc = zc.Str("service", opt.Service)
	}
	if opt.WithCaller {
		zc = zc.Caller()
	}
	l := zc.Logger()
	return &l
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	Init(FromEnv())
	return root.Load()
}

// C returns the root logger tagged with the request id carried by ctx, if any
func C(ctx context.Context) *Logger {
	rid := pnet.RequestID(ctx)
	if rid == "" {
		return Get()
	}
	l := Get().With().Str("request_id", rid).Logger()
	return &l
}

// Named returns the root logger tagged with a component
func Named(component string) *Logger {
	l := Get().With().Str("component", component).Logger()
	return &l
}
