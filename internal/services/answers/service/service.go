// Package service serves the raw answer log
package service

import (
	"context"

	"answerlog/internal/core/answer"
	"answerlog/internal/services/answers/domain"
	"answerlog/internal/services/answers/repo"
)

// Service defines the answers service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the answers service over any Repo
type Svc struct {
	Repo repo.Repo
}

// New constructs an answers service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("answers.Service requires a non nil Repo")
	}
	return &Svc{Repo: r}
}

// All returns every row, or the latest row per (user, question) when recent
func (s *Svc) All(ctx context.Context, recent bool) ([]answer.Record, error) {
	return s.list(ctx, repo.Filter{Recent: recent})
}

// ByUser returns one user's rows
func (s *Svc) ByUser(ctx context.Context, userID int64, recent bool) ([]answer.Record, error) {
	return s.list(ctx, repo.Filter{UserID: &userID, Recent: recent})
}

// ByQuestion returns one question's rows
func (s *Svc) ByQuestion(ctx context.Context, questionID int64, recent bool) ([]answer.Record, error) {
	return s.list(ctx, repo.Filter{QuestionID: &questionID, Recent: recent})
}

func (s *Svc) list(ctx context.Context, f repo.Filter) ([]answer.Record, error) {
	out, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []answer.Record{}
	}
	return out, nil
}
