package answer

import "context"

// FetchOptions is the per call configuration for a Store read
// values are copied into each call and never shared between calls
type FetchOptions struct {
	// RecentOnly asks the store to return only the latest row per (user, question)
	// the resolver does not rely on it
	RecentOnly bool

	// RequestID is forwarded to remote stores for correlation when set
	RequestID string
}

// Store is the read only answer log
type Store interface {
	FetchAll(ctx context.Context, opts FetchOptions) ([]Record, error)
	FetchByUser(ctx context.Context, userID int64, opts FetchOptions) ([]Record, error)
	FetchByQuestion(ctx context.Context, questionID int64, opts FetchOptions) ([]Record, error)
}

// StoreFuncs adapts plain functions to Store; nil funcs return no records
type StoreFuncs struct {
	All        func(ctx context.Context, opts FetchOptions) ([]Record, error)
	ByUser     func(ctx context.Context, userID int64, opts FetchOptions) ([]Record, error)
	ByQuestion func(ctx context.Context, questionID int64, opts FetchOptions) ([]Record, error)
}

// FetchAll implements Store
func (f StoreFuncs) FetchAll(ctx context.Context, opts FetchOptions) ([]Record, error) {
	if f.All == nil {
		return nil, nil
	}
	return f.All(ctx, opts)
}

// FetchByUser implements Store
func (f StoreFuncs) FetchByUser(ctx context.Context, userID int64, opts FetchOptions) ([]Record, error) {
	if f.ByUser == nil {
		return nil, nil
	}
	return f.ByUser(ctx, userID, opts)
}

// FetchByQuestion implements Store
func (f StoreFuncs) FetchByQuestion(ctx context.Context, questionID int64, opts FetchOptions) ([]Record, error) {
	if f.ByQuestion == nil {
		return nil, nil
	}
	return f.ByQuestion(ctx, questionID, opts)
}
