// Package source holds decorators layered over an answer.Store
package source

import (
	"context"
	"time"

	"answerlog/internal/core/answer"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the fetch metrics shared by every Metered store on a registry
type Metrics struct {
	// FetchTotal counts fetches by op and result (ok, error)
	FetchTotal *prometheus.CounterVec
	// FetchDuration is fetch latency by op
	FetchDuration *prometheus.HistogramVec
	// FetchRows is the number of records returned by op
	FetchRows *prometheus.HistogramVec
}

// NewMetrics registers the fetch metrics on reg; nil means the default registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		FetchTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "answerlog_source_fetch_total",
			Help: "Answer store fetches by op and result",
		}, []string{"op", "result"}),
		FetchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "answerlog_source_fetch_duration_seconds",
			Help:    "Answer store fetch duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"op"}),
		FetchRows: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "answerlog_source_fetch_rows",
			Help:    "Records returned per answer store fetch",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"op"}),
	}
}

// Metered records fetch metrics around any answer.Store
type Metered struct {
	inner answer.Store
	m     *Metrics
}

var _ answer.Store = (*Metered)(nil)

// NewMetered wraps inner; m must come from NewMetrics
func NewMetered(inner answer.Store, m *Metrics) *Metered {
	if inner == nil || m == nil {
		panic("source.Metered requires a store and metrics")
	}
	return &Metered{inner: inner, m: m}
}

func (s *Metered) observe(op string, start time.Time, recs []answer.Record, err error) {
	s.m.FetchDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		s.m.FetchTotal.WithLabelValues(op, "error").Inc()
		return
	}
	s.m.FetchTotal.WithLabelValues(op, "ok").Inc()
	s.m.FetchRows.WithLabelValues(op).Observe(float64(len(recs)))
}

// FetchAll implements answer.Store
func (s *Metered) FetchAll(ctx context.Context, opts answer.FetchOptions) ([]answer.Record, error) {
	start := time.Now()
	recs, err := s.inner.FetchAll(ctx, opts)
	s.observe("all", start, recs, err)
	return recs, err
}

// FetchByUser implements answer.Store
func (s *Metered) FetchByUser(ctx context.Context, userID int64, opts answer.FetchOptions) ([]answer.Record, error) {
	start := time.Now()
	recs, err := s.inner.FetchByUser(ctx, userID, opts)
	s.observe("by_user", start, recs, err)
	return recs, err
}

// FetchByQuestion implements answer.Store
func (s *Metered) FetchByQuestion(ctx context.Context, questionID int64, opts answer.FetchOptions) ([]answer.Record, error) {
	start := time.Now()
	recs, err := s.inner.FetchByQuestion(ctx, questionID, opts)
	s.observe("by_question", start, recs, err)
	return recs, err
}
