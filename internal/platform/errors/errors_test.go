package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeDataIntegrity, http.StatusUnprocessableEntity},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{ErrorCode(900), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrs.New("dial refused")
	err := Wrapf(cause, ErrorCodeUnavailable, "answer store fetch %s", "by-question")

	if err.Error() != "answer store fetch by-question: dial refused" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("cause lost")
	}
	if HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", HTTPStatus(err))
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}
}

func TestFieldAndOpAreCopyOnWrite(t *testing.T) {
	base := Newf(ErrorCodeDataIntegrity, "weight %q is not a number", "heavy")
	tagged := WithOp(WithField(base, "weight"), "under-bmi")

	e, ok := As(tagged)
	if !ok || e.Field() != "weight" || e.Op() != "under-bmi" {
		t.Fatalf("tagged = %+v", e)
	}
	if orig, _ := As(base); orig.Field() != "" || orig.Op() != "" {
		t.Fatalf("base mutated: %+v", orig)
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign || WithOp(foreign, "y") != foreign {
		t.Fatalf("foreign errors must pass through")
	}
}

func TestCodeOfThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("service: %w", InvalidArgf("want <questionId>~<value>, got %q", "5"))
	if !IsCode(err, ErrorCodeInvalidArgument) {
		t.Fatalf("code = %d", CodeOf(err))
	}
	if CodeOf(stderrs.New("x")) != ErrorCodeUnknown {
		t.Fatalf("foreign error should be unknown")
	}
	if !IsCode(NotFoundf("question %d", 9), ErrorCodeNotFound) {
		t.Fatalf("NotFoundf code")
	}
}

func TestWireFrom(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Wire
	}{
		{"nil", nil, Wire{}},
		{"foreign", stderrs.New("boom"), Wire{Code: ErrorCodeUnknown, Message: "boom"}},
		{
			"coded",
			WithOp(WithField(New(ErrorCodeValidation, "years must be >= 0"), "years"), "younger-than"),
			Wire{Code: ErrorCodeValidation, Message: "years must be >= 0", Field: "years", Op: "younger-than"},
		},
		{
			"wrapped cause stays private",
			Wrap(stderrs.New("secret dsn"), ErrorCodeDB, "list answers"),
			Wire{Code: ErrorCodeDB, Message: "list answers"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WireFrom(tc.err); got != tc.want {
				t.Fatalf("WireFrom = %+v, want %+v", got, tc.want)
			}
		})
	}
}
