package module

import (
	"context"

	"answerlog/internal/core/answer"
	answerssvc "answerlog/internal/services/answers/service"
)

// Ports holds the ports exposed by the answers module
type Ports struct {
	// Store is the in process answer log for other modules
	Store answer.Store
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptStore struct{ svc answerssvc.Service }

var _ answer.Store = adaptStore{}

// FetchAll implements answer.Store
func (a adaptStore) FetchAll(ctx context.Context, opts answer.FetchOptions) ([]answer.Record, error) {
	return a.svc.All(ctx, opts.RecentOnly)
}

// FetchByUser implements answer.Store
func (a adaptStore) FetchByUser(ctx context.Context, userID int64, opts answer.FetchOptions) ([]answer.Record, error) {
	return a.svc.ByUser(ctx, userID, opts.RecentOnly)
}

// FetchByQuestion implements answer.Store
func (a adaptStore) FetchByQuestion(ctx context.Context, questionID int64, opts answer.FetchOptions) ([]answer.Record, error) {
	return a.svc.ByQuestion(ctx, questionID, opts.RecentOnly)
}
