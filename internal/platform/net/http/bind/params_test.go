package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "answerlog/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

type routeIn struct {
	UserID int64   `path:"userId" json:"userId" validate:"min=1"`
	Answer string  `path:"answer" json:"answer"`
	Ratio  float64 `query:"ratio" json:"ratio"`
	Recent bool    `query:"recent" json:"recent"`
	Floor  string  `query:"minAnswerDate" json:"minAnswerDate"`
}

// serve routes a request through chi so URL params are populated
func serve(t *testing.T, target string) (routeIn, error) {
	t.Helper()
	var (
		got routeIn
		err error
	)
	r := chi.NewRouter()
	r.Get("/users/{userId}/answers/{answer}", func(w http.ResponseWriter, req *http.Request) {
		got, err = Params[routeIn](req)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	return got, err
}

func TestParams_PathAndQuery(t *testing.T) {
	got, err := serve(t, "/users/42/answers/Very%20Good?recent=true&ratio=1.5&minAnswerDate=2020-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != 42 || got.Answer != "Very Good" || !got.Recent || got.Ratio != 1.5 || got.Floor != "2020-01-01" {
		t.Fatalf("got %+v", got)
	}
}

func TestParams_MissingQueryKeepsZero(t *testing.T) {
	got, err := serve(t, "/users/7/answers/x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Recent || got.Floor != "" || got.Ratio != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestParams_BadValues(t *testing.T) {
	cases := []struct {
		target string
		field  string
	}{
		{"/users/abc/answers/x", "userId"},
		{"/users/1/answers/x?recent=maybe", "recent"},
		{"/users/1/answers/x?ratio=lots", "ratio"},
		{"/users/0/answers/x", "userId"},
	}
	for _, c := range cases {
		_, err := serve(t, c.target)
		if perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("%s: code = %v (%v)", c.target, perr.CodeOf(err), err)
		}
		if e, _ := perr.As(err); e.Field() != c.field {
			t.Fatalf("%s: field = %q, want %q", c.target, e.Field(), c.field)
		}
	}
}

func TestParams_NonStruct(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := Params[int](req); err == nil {
		t.Fatalf("expected error for non struct")
	}
}

func TestParams_PercentInAnswerIsDecodedOnce(t *testing.T) {
	cases := []struct {
		target string
		want   string
	}{
		// Path holds "50%20off" and no RawPath is kept
		{"/users/1/answers/50%2520off", "50%20off"},
		{"/users/1/answers/50%20off", "50 off"},
		{"/users/1/answers/100%25", "100%"},
		// an escaped slash keeps RawPath, so chi hands back the escaped segment
		{"/users/1/answers/yes%2Fno", "yes/no"},
	}
	for _, c := range cases {
		got, err := serve(t, c.target)
		if err != nil {
			t.Fatalf("%s: %v", c.target, err)
		}
		if got.Answer != c.want {
			t.Fatalf("%s: answer = %q, want %q", c.target, got.Answer, c.want)
		}
	}
}

func TestParams_ValidationMessageUsesJSONName(t *testing.T) {
	_, err := serve(t, "/users/0/answers/x")
	e, ok := perr.As(err)
	if !ok || e.Field() != "userId" || !strings.Contains(e.Error(), "userId") {
		t.Fatalf("err = %v", err)
	}
}
