// Package config reads service settings from prefixed environment variables
// e.g. config.New().Prefix("CORE_API_").MayBool("METRICS", true) reads CORE_API_METRICS
package config

import (
	"strconv"
	"strings"
	"time"

	"answerlog/internal/platform/config/raw"
	"answerlog/internal/platform/logger"
)

// Conf is a prefixed view over the environment
type Conf struct{ env raw.Conf }

// New returns the unprefixed view
func New() Conf { return Conf{env: raw.New()} }

// Prefix returns a view whose keys are prefixed by p
func (c Conf) Prefix(p string) Conf { return Conf{env: c.env.Prefix(p)} }

// MustString returns the value and panics when it is unset
func (c Conf) MustString(key string) string {
	v, ok := c.env.Lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.env.Key(key)).Msg("missing required env")
	}
	return v
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string { return c.env.Get(key, def) }

// MayInt returns the value or def; an unparsable value is logged and ignored
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayBool returns the value or def; an unparsable value is logged and ignored
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration returns the value (250ms, 10s) or def; an unparsable value is logged and ignored
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayEnum returns the lower cased value, or def when unset
// a value outside allowed is a deployment mistake and panics
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := strings.ToLower(c.MayString(key, def))
	for _, a := range allowed {
		if v == strings.ToLower(a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.env.Key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid env value")
	return ""
}

func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.env.Key(key)).Str("value", s).Interface("default", def).
			Msg("unparsable env, using default")
		return def
	}
	return v
}
