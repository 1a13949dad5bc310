// Package convert turns raw answer text into typed values
//
// Height, date and weight answers are free text in the log. Parsers here are
// pure and never touch the clock; callers pass "now" explicitly
package convert

import (
	"strconv"
	"strings"
	"time"

	perr "answerlog/internal/platform/errors"
)

// DefaultFloor is the date floor used when a caller supplies none
const DefaultFloor = "2000-01-01"

// ParseHeight reads "<feet>ft <inches>in" and returns total inches
// whitespace around the numbers is ignored, so "5ft11in" and "5 ft 11 in" parse too
// ok is false for decimals, missing markers and non-positive totals
func ParseHeight(s string) (inches int, ok bool) {
	if strings.Contains(s, ".") {
		return 0, false
	}
	ft := strings.Index(s, "ft")
	if ft < 0 {
		return 0, false
	}
	in := strings.Index(s[ft+2:], "in")
	if in < 0 {
		return 0, false
	}
	in += ft + 2

	feet, err := strconv.Atoi(strings.TrimSpace(s[:ft]))
	if err != nil || feet < 0 {
		return 0, false
	}
	rest, err := strconv.Atoi(strings.TrimSpace(s[ft+2 : in]))
	if err != nil || rest < 0 {
		return 0, false
	}
	total := feet*12 + rest
	if total <= 0 {
		return 0, false
	}
	return total, true
}

// ParseBirthDate reads a "YYYY-MM-DD" answer into a UTC calendar date
// Malformed input is a data integrity failure
func ParseBirthDate(s string) (time.Time, error) {
	d, err := parseDate(s)
	if err != nil {
		return time.Time{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeDataIntegrity, "malformed birth date %q", s), "answer")
	}
	return d, nil
}

// ParseFloor reads a query date floor, start of day UTC
// An empty string yields DefaultFloor
func ParseFloor(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultFloor
	}
	d, err := parseDate(s)
	if err != nil {
		return time.Time{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "malformed date floor %q", s), "minAnswerDate")
	}
	return d, nil
}

// MustFloor is ParseFloor for constants known to be valid
func MustFloor(s string) time.Time {
	d, err := ParseFloor(s)
	if err != nil {
		panic(err)
	}
	return d
}

func parseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, perr.Newf(perr.ErrorCodeInvalidArgument, "want year-month-day, got %d parts", len(parts))
	}
	var ymd [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "date part is not a number")
		}
		ymd[i] = n
	}
	d := time.Date(ymd[0], time.Month(ymd[1]), ymd[2], 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out of range parts, reject those instead
	if d.Year() != ymd[0] || int(d.Month()) != ymd[1] || d.Day() != ymd[2] {
		return time.Time{}, perr.Newf(perr.ErrorCodeInvalidArgument, "no such calendar date")
	}
	return d, nil
}

// Age returns whole calendar years elapsed from dob to now
func Age(dob, now time.Time) int {
	dob, now = dob.UTC(), now.UTC()
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// ParseNumber reads a numeric answer, surrounding whitespace allowed
func ParseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, perr.WithField(perr.Wrapf(err, perr.ErrorCodeDataIntegrity, "answer %q is not numeric", s), "answer")
	}
	return f, nil
}

// BMI is the imperial approximation 703 * lb / in^2
func BMI(heightIn int, weightLb float64) float64 {
	h := float64(heightIn)
	return 703 * weightLb / (h * h)
}

// OnOrAfter reports whether ts satisfies an inclusive floor
// A nil timestamp never does
func OnOrAfter(ts *time.Time, floor time.Time) bool {
	if ts == nil {
		return false
	}
	return !ts.Before(floor)
}
