// Package store opens the answer log backends and exposes them as small read seams
package store

import (
	"context"
	"errors"

	"answerlog/internal/core/version"
	"answerlog/internal/platform/logger"
	"answerlog/internal/platform/store/ch"
	"answerlog/internal/platform/store/pg"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Row is what a scanner reads one record from
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set; pgx.Rows satisfies it as is
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Querier is the postgres read surface
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Clickhouse is the columnar read surface
type Clickhouse interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Config selects and configures the backends; disabled ones stay nil
type Config struct {
	AppName string
	PG      pg.Config
	CH      ch.Config
	UsePG   bool
	UseCH   bool
}

// Store holds the opened backends
type Store struct {
	PG Querier
	CH Clickhouse

	closers []func() error
}

// Open connects every enabled backend
func Open(ctx context.Context, cfg Config, log logger.Logger) (*Store, error) {
	s := &Store{}
	if cfg.UsePG {
		pool, err := pg.Open(ctx, cfg.PG, log)
		if err != nil {
			return nil, err
		}
		s.PG = pgReader{pool: pool}
		s.closers = append(s.closers, func() error { pool.Close(); return nil })
	}
	if cfg.UseCH {
		chCfg := cfg.CH
		chCfg.Role, chCfg.Tag = cfg.AppName, version.Info().Version
		c, err := ch.Open(ctx, chCfg)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.CH = chReader{c: c}
		s.closers = append(s.closers, c.Close)
	}
	return s, nil
}

// Close releases every opened backend
func (s *Store) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	s.closers = nil
	return errors.Join(errs...)
}

type pgReader struct{ pool *pgxpool.Pool }

func (p pgReader) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (p pgReader) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

type chReader struct{ c *ch.CH }

func (r chReader) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rows, err := r.c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{rows}, nil
}

func (r chReader) Ping(ctx context.Context) error { return r.c.Ping(ctx) }

// chRows drops the error from Close to match Rows
type chRows struct{ ch.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }
