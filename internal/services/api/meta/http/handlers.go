// Package http serves the meta endpoints: liveness, readiness, build and backend info
package http

import (
	"context"
	"net/http"
	"time"

	"answerlog/internal/core/version"
	"answerlog/internal/modkit/httpkit"
)

// Check is one readiness dependency; a nil Ping means it is not configured
type Check struct {
	Name string
	Ping func(context.Context) error
}

// Deps are what the meta endpoints report on
type Deps struct {
	ServiceName     string
	StartedAt       time.Time
	Checks          []Check
	AnswersBackend  string
	SelectionSource string
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/backends", h.backends)
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Health is the liveness payload
type Health struct {
	OK      bool   `json:"ok" example:"true"`
	Service string `json:"service" example:"answerlog-api"`
	Now     string `json:"now" example:"2026-01-03T13:05:00Z"`
}

// Ready lists each dependency check; Status is fail when any check failed
type Ready struct {
	Status string        `json:"status" example:"ok"`
	Checks []CheckResult `json:"checks"`
}

// CheckResult is one dependency outcome: ok, fail or skipped
type CheckResult struct {
	Name   string `json:"name" example:"pg"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty"`
}

// Service reports when the process started
type Service struct {
	Name    string `json:"name" example:"answerlog-api"`
	Started string `json:"started" example:"2026-01-03T13:00:00Z"`
	Uptime  int64  `json:"uptime" example:"300"`
}

// Backends reports where answers are read from
type Backends struct {
	Answers   string            `json:"answers" example:"pg"`
	Selection string            `json:"selection" example:"local"`
	Build     version.BuildInfo `json:"build"`
}

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} Health
// @Router /meta/health [get]
func (h *handlers) health(*http.Request) (any, error) {
	return Health{OK: true, Service: h.deps.ServiceName, Now: h.now().UTC().Format(time.RFC3339)}, nil
}

// @Summary Readiness with a ping per configured store
// @Tags Meta
// @Produce json
// @Success 200 {object} Ready
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	out := Ready{Status: "ok", Checks: make([]CheckResult, 0, len(h.deps.Checks))}
	for _, c := range h.deps.Checks {
		res := CheckResult{Name: c.Name, Status: "skipped"}
		if c.Ping != nil {
			res.Status = "ok"
			if err := c.Ping(ctx); err != nil {
				res.Status, res.Error = "fail", err.Error()
				out.Status = "fail"
			}
		}
		out.Checks = append(out.Checks, res)
	}
	return out, nil
}

// @Summary Service uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} Service
// @Router /meta/service [get]
func (h *handlers) service(*http.Request) (any, error) {
	return Service{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// @Summary Answer log backend and selection source
// @Tags Meta
// @Produce json
// @Success 200 {object} Backends
// @Router /meta/backends [get]
func (h *handlers) backends(*http.Request) (any, error) {
	return Backends{
		Answers:   h.deps.AnswersBackend,
		Selection: h.deps.SelectionSource,
		Build:     version.Info(),
	}, nil
}
