package pg

import (
	"context"
	"strings"
	"time"

	"answerlog/internal/platform/logger"
	pnet "answerlog/internal/platform/net"

	"github.com/jackc/pgx/v5"
)

// tracer logs each statement once it finishes; for Query that is when the rows close
type tracer struct {
	log  logger.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*tracer)(nil)

func newTracer(log logger.Logger, slow time.Duration) *tracer {
	return &tracer{
		log:  log.With().Str("component", "pg").Logger(),
		slow: slow,
		now:  time.Now,
	}
}

type startKey struct{}

type started struct {
	sql  string
	args []any
	at   time.Time
}

func (t *tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, startKey{}, started{sql: data.SQL, args: data.Args, at: t.now()})
}

func (t *tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	s, ok := ctx.Value(startKey{}).(started)
	if !ok {
		return
	}
	elapsed := t.now().Sub(s.at)
	slow := t.slow > 0 && elapsed >= t.slow

	evt := t.log.Info()
	if data.Err != nil {
		evt = t.log.Error().Err(data.Err)
	} else if slow {
		evt = t.log.Warn()
	}
	if rid := pnet.RequestID(ctx); rid != "" {
		evt = evt.Str("request_id", rid)
	}
	evt.Dur("elapsed", elapsed).
		Bool("slow", slow).
		Int64("rows", data.CommandTag.RowsAffected()).
		Str("sql", strings.Join(strings.Fields(s.sql), " ")).
		Interface("args", s.args).
		Msg("pg query")
}
