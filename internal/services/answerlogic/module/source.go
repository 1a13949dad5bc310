package module

import (
	"time"

	"answerlog/internal/adapters/answersvc"
	"answerlog/internal/core/answer"
	"answerlog/internal/platform/config"
)

// Selection sources
const (
	SourceLocal  = "local"
	SourceRemote = "remote"
)

// SourceConfig picks where the selection service reads answers from
type SourceConfig struct {
	Kind   string
	Remote answersvc.Options
}

// SourceFromConfig reads SOURCE and REMOTE_* under the caller's prefix (ANSWER_LOGIC_)
func SourceFromConfig(cfg config.Conf) SourceConfig {
	sc := SourceConfig{
		Kind: cfg.MayEnum("SOURCE", SourceLocal, SourceLocal, SourceRemote),
	}
	if sc.Kind == SourceRemote {
		sc.Remote = answersvc.Options{
			BaseURL: cfg.MustString("REMOTE_URL"),
			User:    cfg.MayString("REMOTE_USER", ""),
			Pass:    cfg.MayString("REMOTE_PASS", ""),
			Timeout: cfg.MayDuration("REMOTE_TIMEOUT", 10*time.Second),
		}
	}
	return sc
}

// Resolve returns local for the local kind, otherwise a remote client
func (sc SourceConfig) Resolve(local answer.Store) (answer.Store, error) {
	if sc.Kind != SourceRemote {
		return local, nil
	}
	c, err := answersvc.NewClient(sc.Remote)
	if err != nil {
		return nil, err
	}
	return c, nil
}
