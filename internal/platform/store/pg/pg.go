// Package pg opens the postgres pool that backs the answer log
package pg

import (
	"context"
	"fmt"
	"time"

	"answerlog/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool and its boot readiness check
type Config struct {
	URL      string
	MaxConns int32

	// LogSQL logs every statement; Slow marks statements at or above it as warnings
	LogSQL bool
	Slow   time.Duration

	Attempts    int           // boot pings, default 20
	PingTimeout time.Duration // per ping, default 3s
}

var (
	newPool      = pgxpool.NewWithConfig
	backoffStart = 150 * time.Millisecond
	backoffCeil  = 2 * time.Second
)

// Open builds the pool and waits until postgres answers a ping
func Open(ctx context.Context, cfg Config, log logger.Logger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.LogSQL {
		pcfg.ConnConfig.Tracer = newTracer(log, cfg.Slow)
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("pg pool: %w", err)
	}
	if err := waitReady(ctx, pool.Ping, cfg.Attempts, cfg.PingTimeout); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// waitReady pings with a doubling backoff until one succeeds or attempts run out
func waitReady(ctx context.Context, ping func(context.Context) error, attempts int, timeout time.Duration) error {
	if attempts <= 0 {
		attempts = 20
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	var last error
	backoff := backoffStart
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		last = ping(pctx)
		cancel()
		if last == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, backoffCeil)
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, last)
}
