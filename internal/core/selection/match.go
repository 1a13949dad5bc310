package selection

import (
	"strconv"
	"strings"
	"time"

	"answerlog/internal/core/answer"
	"answerlog/internal/core/convert"
	perr "answerlog/internal/platform/errors"
)

// ChoiceSep separates the question id and values in an answer-in token list
const ChoiceSep = "~"

// Choices is a parsed "<questionId>~<value>~<value>..." list
type Choices struct {
	QuestionID int64
	Values     []string
}

// ParseChoices splits a token list; the first token must be the question id
// and at least one value must follow
func ParseChoices(s string) (Choices, error) {
	parts := strings.Split(s, ChoiceSep)
	if len(parts) < 2 {
		return Choices{}, perr.WithField(perr.InvalidArgf("want <questionId>%s<value>..., got %q", ChoiceSep, s), "questionIdAnswers")
	}
	qid, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Choices{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "question id %q is not an integer", parts[0]), "questionIdAnswers")
	}
	return Choices{QuestionID: qid, Values: parts[1:]}, nil
}

// AnswerEquals selects users whose current answer to questionID is exactly value
// and was recorded on or after floor
func AnswerEquals(recs []answer.Record, questionID int64, value string, floor time.Time) UserSet {
	return AnswerIn(recs, questionID, []string{value}, floor)
}

// AnswerIn selects users whose current answer to questionID is one of values
// and was recorded on or after floor
func AnswerIn(recs []answer.Record, questionID int64, values []string, floor time.Time) UserSet {
	want := make(map[string]struct{}, len(values))
	for _, v := range values {
		want[v] = struct{}{}
	}
	out := make(UserSet)
	for user, r := range answer.Resolve(recs).Question(questionID) {
		if _, ok := want[r.Answer]; ok && convert.OnOrAfter(r.AnswerDate, floor) {
			out.Add(user)
		}
	}
	return out
}

// NumericAtLeast selects users whose current numeric answer is lo or more
// Any non-numeric current answer fails the call
func NumericAtLeast(recs []answer.Record, questionID int64, lo float64, floor time.Time) (UserSet, error) {
	return byNumber(recs, questionID, floor, func(v float64) bool { return v >= lo })
}

// NumericUnder selects users whose current numeric answer is strictly below hi
// Any non-numeric current answer fails the call
func NumericUnder(recs []answer.Record, questionID int64, hi float64, floor time.Time) (UserSet, error) {
	return byNumber(recs, questionID, floor, func(v float64) bool { return v < hi })
}

func byNumber(recs []answer.Record, questionID int64, floor time.Time, keep func(float64) bool) (UserSet, error) {
	current := answer.Resolve(recs).Question(questionID)
	vals := make(map[int64]float64, len(current))
	for user, r := range current {
		v, err := convert.ParseNumber(r.Answer)
		if err != nil {
			return nil, perr.WithOp(err, "numeric")
		}
		vals[user] = v
	}
	out := make(UserSet)
	for user, v := range vals {
		if keep(v) && convert.OnOrAfter(current[user].AnswerDate, floor) {
			out.Add(user)
		}
	}
	return out, nil
}
