// Package answer holds the answer log record and the recency resolver
package answer

import (
	"sort"
	"time"
)

// Record is one historical answer row
// AnswerDate may be nil; such rows are kept but lose recency comparisons
type Record struct {
	ID              int64      `json:"id" example:"101"`
	UserID          int64      `json:"userId" example:"7"`
	QuestionID      int64      `json:"questionId" example:"2"`
	Answer          string     `json:"answer" example:"5ft 11in"`
	AnswerDate      *time.Time `json:"answerDate,omitempty" example:"2024-03-01T10:00:00Z"`
	KitID           *string    `json:"kitId,omitempty"`
	TestID          *int64     `json:"testId,omitempty"`
	QuestionnaireID *int64     `json:"questionnaireId,omitempty"`
}

// Key identifies a (user, question) group
type Key struct {
	UserID     int64
	QuestionID int64
}

// Key returns the record's group key
func (r Record) Key() Key { return Key{UserID: r.UserID, QuestionID: r.QuestionID} }

// Resolved holds exactly one current record per key
type Resolved map[Key]Record

// Resolve collapses history to the most recent record per (user, question)
//
// A candidate replaces the installed record only when both are dated and the
// candidate is strictly later, or the installed one is undated and the
// candidate is dated. Equal dates fall to the higher id so the result does
// not depend on input order
func Resolve(recs []Record) Resolved {
	out := make(Resolved, len(recs))
	for _, r := range recs {
		k := r.Key()
		cur, ok := out[k]
		if !ok || supersedes(r, cur) {
			out[k] = r
		}
	}
	return out
}

func supersedes(cand, cur Record) bool {
	if cand.AnswerDate == nil {
		return false
	}
	if cur.AnswerDate == nil {
		return true
	}
	if cand.AnswerDate.After(*cur.AnswerDate) {
		return true
	}
	return cand.AnswerDate.Equal(*cur.AnswerDate) && cand.ID > cur.ID
}

// Current is Resolve flattened to a slice ordered by user then question
func Current(recs []Record) []Record { return Resolve(recs).Records() }

// Records returns the resolved set ordered by user then question
func (rs Resolved) Records() []Record {
	out := make([]Record, 0, len(rs))
	for _, r := range rs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].QuestionID < out[j].QuestionID
	})
	return out
}

// Question narrows the resolved set to one question, keyed by user
func (rs Resolved) Question(questionID int64) map[int64]Record {
	out := make(map[int64]Record)
	for k, r := range rs {
		if k.QuestionID == questionID {
			out[k.UserID] = r
		}
	}
	return out
}
