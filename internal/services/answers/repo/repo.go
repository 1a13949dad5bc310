// Package repo reads the answer log from postgres or clickhouse
package repo

import (
	"context"
	"strconv"
	"strings"

	"answerlog/internal/core/answer"
	perr "answerlog/internal/platform/errors"
	"answerlog/internal/platform/store"
)

// Filter narrows a listing; nil ids mean no constraint
type Filter struct {
	UserID     *int64
	QuestionID *int64
	Recent     bool
}

// Repo is the persistence surface for the answer log
type Repo interface {
	List(ctx context.Context, f Filter) ([]answer.Record, error)
}

const columns = `id, user_id, question_id, answer, answer_date, kit_id, test_id, questionnaire_id`

// PG reads the answer log from the postgres answer table
type PG struct{ q store.Querier }

// NewPG returns a postgres backed Repo
func NewPG(q store.Querier) Repo {
	if q == nil {
		panic("answers.repo requires a non nil postgres querier")
	}
	return &PG{q: q}
}

// pgListSQL builds the listing query
// recent keeps row_number 1 per (user, question), newest dated row first
func pgListSQL(f Filter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if f.UserID != nil {
		args = append(args, *f.UserID)
		where = append(where, "user_id = $"+strconv.Itoa(len(args)))
	}
	if f.QuestionID != nil {
		args = append(args, *f.QuestionID)
		where = append(where, "question_id = $"+strconv.Itoa(len(args)))
	}
	cond := ""
	if len(where) > 0 {
		cond = "where " + strings.Join(where, " and ")
	}

	if !f.Recent {
		return `
select ` + columns + `
from answer
` + cond + `
order by user_id, question_id, id
`, args
	}
	return `
select ` + columns + `
from (
	select ` + columns + `,
		row_number() over (
			partition by user_id, question_id
			order by answer_date desc nulls last, id desc
		) as rn
	from answer
	` + cond + `
) ranked
where rn = 1
order by user_id, question_id
`, args
}

func (r *PG) List(ctx context.Context, f Filter) ([]answer.Record, error) {
	sql, args := pgListSQL(f)
	out, err := store.Many(ctx, r.q, scanRecord, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "list answers")
	}
	return out, nil
}

func scanRecord(row store.Row) (answer.Record, error) {
	var rec answer.Record
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.QuestionID,
		&rec.Answer,
		&rec.AnswerDate,
		&rec.KitID,
		&rec.TestID,
		&rec.QuestionnaireID,
	)
	return rec, err
}
