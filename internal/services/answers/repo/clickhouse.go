package repo

import (
	"context"
	"strings"

	"answerlog/internal/core/answer"
	perr "answerlog/internal/platform/errors"
	"answerlog/internal/platform/store"
)

// CH reads the answer log from a clickhouse table with the same columns
type CH struct{ db store.Clickhouse }

// NewCH returns a clickhouse backed Repo
func NewCH(db store.Clickhouse) Repo {
	if db == nil {
		panic("answers.repo requires a non nil Clickhouse")
	}
	return &CH{db: db}
}

// chListSQL builds the listing query
// recent uses LIMIT 1 BY over the newest dated row first
func chListSQL(f Filter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if f.UserID != nil {
		where = append(where, "user_id = ?")
		args = append(args, *f.UserID)
	}
	if f.QuestionID != nil {
		where = append(where, "question_id = ?")
		args = append(args, *f.QuestionID)
	}

	var b strings.Builder
	b.WriteString("SELECT " + columns + " FROM answer")
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	if f.Recent {
		b.WriteString(" ORDER BY user_id, question_id, answer_date DESC NULLS LAST, id DESC")
		b.WriteString(" LIMIT 1 BY user_id, question_id")
	} else {
		b.WriteString(" ORDER BY user_id, question_id, id")
	}
	return b.String(), args
}

// List implements Repo
func (c *CH) List(ctx context.Context, f Filter) ([]answer.Record, error) {
	sql, args := chListSQL(f)
	rows, err := c.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "list answers")
	}
	out, err := store.Collect(rows, scanRecord)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "scan answers")
	}
	return out, nil
}
