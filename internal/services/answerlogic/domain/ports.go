package domain

import (
	"context"

	"answerlog/internal/core/answer"
	"answerlog/internal/core/selection"
)

// ServicePort is the selection surface consumed by handlers and the query CLI
// minDate strings are parsed as YYYY-MM-DD; empty means the default floor
type ServicePort interface {
	MapAll(ctx context.Context) (map[int64]answer.UserAnswers, error)
	MapByUser(ctx context.Context, userID int64) (answer.UserAnswers, error)
	MapByQuestion(ctx context.Context, questionID int64) (map[string][]answer.Record, error)

	YoungerThan(ctx context.Context, years int) (selection.UserSet, error)
	AtLeastAge(ctx context.Context, years int) (selection.UserSet, error)
	UnderHeight(ctx context.Context, inches int) (selection.UserSet, error)
	AtLeastHeight(ctx context.Context, inches int) (selection.UserSet, error)
	UnderBMI(ctx context.Context, bmi float64) (selection.UserSet, error)
	AtLeastBMI(ctx context.Context, bmi float64) (selection.UserSet, error)

	AnswerEquals(ctx context.Context, questionID int64, value, minDate string) (selection.UserSet, error)
	AnswerIn(ctx context.Context, choices, minDate string) (selection.UserSet, error)
	NumericAtLeast(ctx context.Context, questionID int64, lo float64, minDate string) (selection.UserSet, error)
	NumericUnder(ctx context.Context, questionID int64, hi float64, minDate string) (selection.UserSet, error)
}
