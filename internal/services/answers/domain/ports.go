package domain

import (
	"context"

	"answerlog/internal/core/answer"
)

// ServicePort is consumed by handlers and, through the module port, by other modules
type ServicePort interface {
	All(ctx context.Context, recent bool) ([]answer.Record, error)
	ByUser(ctx context.Context, userID int64, recent bool) ([]answer.Record, error)
	ByQuestion(ctx context.Context, questionID int64, recent bool) ([]answer.Record, error)
}
