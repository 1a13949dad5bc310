package selection

import (
	"sort"
	"time"

	"answerlog/internal/core/answer"
	"answerlog/internal/core/convert"
	perr "answerlog/internal/platform/errors"
)

// ErrMissingJoin marks a BMI input present for a user without its counterpart
var ErrMissingJoin = perr.New(perr.ErrorCodeDataIntegrity, "missing bmi join input")

// YoungerThan selects users whose age is strictly below years
func YoungerThan(recs []answer.Record, years int, now time.Time) (UserSet, error) {
	return byAge(recs, now, func(age int) bool { return age < years })
}

// AtLeastAge selects users whose age is years or more
func AtLeastAge(recs []answer.Record, years int, now time.Time) (UserSet, error) {
	return byAge(recs, now, func(age int) bool { return age >= years })
}

func byAge(recs []answer.Record, now time.Time, keep func(int) bool) (UserSet, error) {
	out := make(UserSet)
	for user, r := range answer.Resolve(recs).Question(QuestionBirthDate) {
		dob, err := convert.ParseBirthDate(r.Answer)
		if err != nil {
			return nil, perr.WithOp(err, "age")
		}
		if keep(convert.Age(dob, now)) {
			out.Add(user)
		}
	}
	return out, nil
}

// Heights maps users to parsed height in inches; unparsable answers are left out
func Heights(recs []answer.Record) map[int64]int {
	out := make(map[int64]int)
	for user, r := range answer.Resolve(recs).Question(QuestionHeight) {
		if in, ok := convert.ParseHeight(r.Answer); ok {
			out[user] = in
		}
	}
	return out
}

// UnderHeight selects users strictly shorter than inches
func UnderHeight(recs []answer.Record, inches int) UserSet {
	return byHeight(recs, func(h int) bool { return h < inches })
}

// AtLeastHeight selects users at least inches tall
func AtLeastHeight(recs []answer.Record, inches int) UserSet {
	return byHeight(recs, func(h int) bool { return h >= inches })
}

func byHeight(recs []answer.Record, keep func(int) bool) UserSet {
	out := make(UserSet)
	for user, h := range Heights(recs) {
		if keep(h) {
			out.Add(user)
		}
	}
	return out
}

// BMIs joins current height and weight answers per user
//
// A user with only one of the two inputs fails the whole call with
// ErrMissingJoin. Unparsable heights drop the user; non-numeric weights fail
func BMIs(heights, weights []answer.Record) (map[int64]float64, error) {
	hs := answer.Resolve(heights).Question(QuestionHeight)
	ws := answer.Resolve(weights).Question(QuestionWeight)

	users := make([]int64, 0, len(hs)+len(ws))
	for u := range hs {
		users = append(users, u)
	}
	for u := range ws {
		if _, ok := hs[u]; !ok {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })

	out := make(map[int64]float64, len(users))
	for _, u := range users {
		h, hok := hs[u]
		w, wok := ws[u]
		switch {
		case !wok:
			return nil, perr.WithField(perr.Wrapf(ErrMissingJoin, perr.ErrorCodeDataIntegrity, "user %d has height but no weight", u), "weight")
		case !hok:
			return nil, perr.WithField(perr.Wrapf(ErrMissingJoin, perr.ErrorCodeDataIntegrity, "user %d has weight but no height", u), "height")
		}
		in, ok := convert.ParseHeight(h.Answer)
		if !ok {
			continue
		}
		lb, err := convert.ParseNumber(w.Answer)
		if err != nil {
			return nil, perr.WithOp(perr.WithField(err, "weight"), "bmi")
		}
		out[u] = convert.BMI(in, lb)
	}
	return out, nil
}

// UnderBMI selects users with BMI strictly below x
func UnderBMI(heights, weights []answer.Record, x float64) (UserSet, error) {
	return byBMI(heights, weights, func(b float64) bool { return b < x })
}

// AtLeastBMI selects users with BMI of x or more
func AtLeastBMI(heights, weights []answer.Record, x float64) (UserSet, error) {
	return byBMI(heights, weights, func(b float64) bool { return b >= x })
}

func byBMI(heights, weights []answer.Record, keep func(float64) bool) (UserSet, error) {
	bmis, err := BMIs(heights, weights)
	if err != nil {
		return nil, err
	}
	out := make(UserSet)
	for u, b := range bmis {
		if keep(b) {
			out.Add(u)
		}
	}
	return out, nil
}
