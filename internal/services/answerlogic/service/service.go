// Package service evaluates population queries over the answer log
package service

import (
	"context"
	"time"

	"answerlog/internal/core/answer"
	"answerlog/internal/core/convert"
	"answerlog/internal/core/selection"
	perr "answerlog/internal/platform/errors"
	"answerlog/internal/platform/logger"
	pnet "answerlog/internal/platform/net"
	"answerlog/internal/services/answerlogic/domain"
)

// Service defines the selection service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service; every call fetches fresh and resolves in memory
type Svc struct {
	Source answer.Store
	Now    func() time.Time
}

// Option configures Svc
type Option func(*Svc)

// WithClock overrides the clock used for age arithmetic
func WithClock(now func() time.Time) Option {
	return func(s *Svc) {
		if now != nil {
			s.Now = now
		}
	}
}

// New constructs a selection service over src
func New(src answer.Store, opts ...Option) *Svc {
	if src == nil {
		panic("answerlogic.Service requires a non nil answer.Store")
	}
	s := &Svc{Source: src, Now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

var _ Service = (*Svc)(nil)

func (s *Svc) opts(ctx context.Context) answer.FetchOptions {
	return answer.FetchOptions{RecentOnly: true, RequestID: pnet.RequestID(ctx)}
}

// fetchErr keeps coded errors and marks anything else as an unavailable upstream
func fetchErr(err error, op string) error {
	if _, ok := perr.As(err); ok {
		return perr.WithOp(err, op)
	}
	return perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnavailable, "answer store fetch failed"), op)
}

func (s *Svc) all(ctx context.Context, op string) ([]answer.Record, error) {
	recs, err := s.Source.FetchAll(ctx, s.opts(ctx))
	if err != nil {
		return nil, fetchErr(err, op)
	}
	return recs, nil
}

func (s *Svc) question(ctx context.Context, op string, questionID int64) ([]answer.Record, error) {
	recs, err := s.Source.FetchByQuestion(ctx, questionID, s.opts(ctx))
	if err != nil {
		return nil, fetchErr(err, op)
	}
	logger.C(ctx).Debug().Str("op", op).Int64("question_id", questionID).Int("rows", len(recs)).Msg("answerlogic: fetched")
	return recs, nil
}

func done(ctx context.Context, op string, set selection.UserSet, err error) (selection.UserSet, error) {
	if err != nil {
		return nil, perr.WithOp(err, op)
	}
	logger.C(ctx).Debug().Str("op", op).Int("users", len(set)).Msg("answerlogic: selected")
	return set, nil
}

// MapAll returns userId -> questionId -> current answer
func (s *Svc) MapAll(ctx context.Context) (map[int64]answer.UserAnswers, error) {
	recs, err := s.all(ctx, "map-all")
	if err != nil {
		return nil, err
	}
	return answer.Resolve(recs).ByUser(), nil
}

// MapByUser returns questionId -> current answer for one user
func (s *Svc) MapByUser(ctx context.Context, userID int64) (answer.UserAnswers, error) {
	recs, err := s.Source.FetchByUser(ctx, userID, s.opts(ctx))
	if err != nil {
		return nil, fetchErr(err, "map-by-user")
	}
	return answer.Resolve(recs).ForUser(userID), nil
}

// MapByQuestion returns answer text -> current records for one question
func (s *Svc) MapByQuestion(ctx context.Context, questionID int64) (map[string][]answer.Record, error) {
	recs, err := s.question(ctx, "map-by-question", questionID)
	if err != nil {
		return nil, err
	}
	rs := answer.Resolve(recs)
	scoped := make(answer.Resolved, len(rs))
	for k, r := range rs {
		if k.QuestionID == questionID {
			scoped[k] = r
		}
	}
	return scoped.ByAnswer(), nil
}

// YoungerThan selects users strictly younger than years
func (s *Svc) YoungerThan(ctx context.Context, years int) (selection.UserSet, error) {
	recs, err := s.question(ctx, "younger-than", selection.QuestionBirthDate)
	if err != nil {
		return nil, err
	}
	set, err := selection.YoungerThan(recs, years, s.Now())
	return done(ctx, "younger-than", set, err)
}

// AtLeastAge selects users aged years or more
func (s *Svc) AtLeastAge(ctx context.Context, years int) (selection.UserSet, error) {
	recs, err := s.question(ctx, "at-least-age", selection.QuestionBirthDate)
	if err != nil {
		return nil, err
	}
	set, err := selection.AtLeastAge(recs, years, s.Now())
	return done(ctx, "at-least-age", set, err)
}

// UnderHeight selects users strictly shorter than inches
func (s *Svc) UnderHeight(ctx context.Context, inches int) (selection.UserSet, error) {
	recs, err := s.question(ctx, "under-height", selection.QuestionHeight)
	if err != nil {
		return nil, err
	}
	return done(ctx, "under-height", selection.UnderHeight(recs, inches), nil)
}

// AtLeastHeight selects users inches tall or more
func (s *Svc) AtLeastHeight(ctx context.Context, inches int) (selection.UserSet, error) {
	recs, err := s.question(ctx, "at-least-height", selection.QuestionHeight)
	if err != nil {
		return nil, err
	}
	return done(ctx, "at-least-height", selection.AtLeastHeight(recs, inches), nil)
}

func (s *Svc) bmiInputs(ctx context.Context, op string) (heights, weights []answer.Record, err error) {
	if heights, err = s.question(ctx, op, selection.QuestionHeight); err != nil {
		return nil, nil, err
	}
	if weights, err = s.question(ctx, op, selection.QuestionWeight); err != nil {
		return nil, nil, err
	}
	return heights, weights, nil
}

// UnderBMI selects users whose BMI is strictly below bmi
func (s *Svc) UnderBMI(ctx context.Context, bmi float64) (selection.UserSet, error) {
	h, w, err := s.bmiInputs(ctx, "under-bmi")
	if err != nil {
		return nil, err
	}
	set, err := selection.UnderBMI(h, w, bmi)
	return done(ctx, "under-bmi", set, err)
}

// AtLeastBMI selects users whose BMI is bmi or more
func (s *Svc) AtLeastBMI(ctx context.Context, bmi float64) (selection.UserSet, error) {
	h, w, err := s.bmiInputs(ctx, "at-least-bmi")
	if err != nil {
		return nil, err
	}
	set, err := selection.AtLeastBMI(h, w, bmi)
	return done(ctx, "at-least-bmi", set, err)
}

// AnswerEquals selects users whose current answer is exactly value on or after minDate
func (s *Svc) AnswerEquals(ctx context.Context, questionID int64, value, minDate string) (selection.UserSet, error) {
	floor, err := convert.ParseFloor(minDate)
	if err != nil {
		return nil, err
	}
	recs, err := s.question(ctx, "answer-equals", questionID)
	if err != nil {
		return nil, err
	}
	return done(ctx, "answer-equals", selection.AnswerEquals(recs, questionID, value, floor), nil)
}

// AnswerIn selects users whose current answer is one of the listed values on or after minDate
func (s *Svc) AnswerIn(ctx context.Context, choices, minDate string) (selection.UserSet, error) {
	c, err := selection.ParseChoices(choices)
	if err != nil {
		return nil, err
	}
	floor, err := convert.ParseFloor(minDate)
	if err != nil {
		return nil, err
	}
	recs, err := s.question(ctx, "answer-in", c.QuestionID)
	if err != nil {
		return nil, err
	}
	return done(ctx, "answer-in", selection.AnswerIn(recs, c.QuestionID, c.Values, floor), nil)
}

// NumericAtLeast selects users whose current numeric answer is lo or more
func (s *Svc) NumericAtLeast(ctx context.Context, questionID int64, lo float64, minDate string) (selection.UserSet, error) {
	floor, err := convert.ParseFloor(minDate)
	if err != nil {
		return nil, err
	}
	recs, err := s.question(ctx, "numeric-at-least", questionID)
	if err != nil {
		return nil, err
	}
	set, err := selection.NumericAtLeast(recs, questionID, lo, floor)
	return done(ctx, "numeric-at-least", set, err)
}

// NumericUnder selects users whose current numeric answer is strictly below hi
func (s *Svc) NumericUnder(ctx context.Context, questionID int64, hi float64, minDate string) (selection.UserSet, error) {
	floor, err := convert.ParseFloor(minDate)
	if err != nil {
		return nil, err
	}
	recs, err := s.question(ctx, "numeric-under", questionID)
	if err != nil {
		return nil, err
	}
	set, err := selection.NumericUnder(recs, questionID, hi, floor)
	return done(ctx, "numeric-under", set, err)
}
