package module

import (

	"answerlog/internal/platform/config"
)

// Backends for the answer log
const (
	BackendPG         = "pg"
	BackendClickhouse = "clickhouse"
)

// Options controls which store backs the answer log
type Options struct {
	Backend string
}

// FromConfig reads ANSWERS_BACKEND under the caller's prefix
func FromConfig(cfg config.Conf) Options {
	return Options{
		Backend: cfg.MayEnum("ANSWERS_BACKEND", BackendPG, BackendPG, BackendClickhouse),
	}
}
