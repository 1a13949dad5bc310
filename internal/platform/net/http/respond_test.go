package http

import (
	"encoding/json"
	stderrs "errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "answerlog/internal/platform/errors"
	pnet "answerlog/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", rr.Body.String(), err)
	}
	return env
}

func TestEndpoint_Success(t *testing.T) {
	h := Endpoint(func(*stdhttp.Request) (any, error) { return []int64{1, 3}, nil })

	req := httptest.NewRequest(stdhttp.MethodGet, "/answer-logic/users/height/min/60", nil)
	req = req.WithContext(pnet.WithRequestID(req.Context(), "req-7"))
	rr := httptest.NewRecorder()
	h(rr, req)

	env := decode(t, rr)
	if rr.Code != stdhttp.StatusOK || env.StatusCode != stdhttp.StatusOK || env.Status != "OK" {
		t.Fatalf("status = %d env %+v", rr.Code, env)
	}
	if env.RequestID != "req-7" {
		t.Fatalf("request id = %q", env.RequestID)
	}
	if ids, ok := env.Data.([]any); !ok || len(ids) != 2 {
		t.Fatalf("data = %#v", env.Data)
	}
}

func TestEndpoint_EmptySliceIsKept(t *testing.T) {
	h := Endpoint(func(*stdhttp.Request) (any, error) { return []int64{}, nil })
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if got := rr.Body.String(); got != `{"status_code":200,"status":"OK","data":[]}`+"\n" {
		t.Fatalf("body = %s", got)
	}
}

func TestEndpoint_Errors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
		field  string
		op     string
	}{
		{
			"data integrity",
			perr.WithOp(perr.WithField(perr.New(perr.ErrorCodeDataIntegrity, "no weight for user 4"), "weight"), "under-bmi"),
			stdhttp.StatusUnprocessableEntity, perr.ErrorCodeDataIntegrity, "weight", "under-bmi",
		},
		{"unavailable", perr.New(perr.ErrorCodeUnavailable, "answer store fetch failed"), stdhttp.StatusServiceUnavailable, perr.ErrorCodeUnavailable, "", ""},
		{"foreign", stderrs.New("boom"), stdhttp.StatusInternalServerError, perr.ErrorCodeUnknown, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := Endpoint(func(*stdhttp.Request) (any, error) { return nil, tc.err })
			rr := httptest.NewRecorder()
			h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

			env := decode(t, rr)
			if rr.Code != tc.status || env.StatusCode != tc.status {
				t.Fatalf("status = %d, want %d", rr.Code, tc.status)
			}
			if env.Code != tc.code || env.Field != tc.field || env.Op != tc.op || env.Data != nil {
				t.Fatalf("env = %+v", env)
			}
		})
	}
}

type userIn struct {
	UserID int64 `path:"userId" json:"userId" validate:"gte=1"`
}

func TestParamsEndpoint(t *testing.T) {
	called := 0
	mux := chi.NewRouter()
	AdaptChi(mux).Get("/answers/users/{userId}", ParamsEndpoint(func(_ *stdhttp.Request, in userIn) (any, error) {
		called++
		return in.UserID, nil
	}))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/answers/users/7", nil))
	if rr.Code != stdhttp.StatusOK || decode(t, rr).Data != float64(7) {
		t.Fatalf("ok path: %d %s", rr.Code, rr.Body.String())
	}

	for _, target := range []string{"/answers/users/seven", "/answers/users/0"} {
		rr = httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, target, nil))
		env := decode(t, rr)
		if rr.Code != stdhttp.StatusBadRequest || env.Code != perr.ErrorCodeValidation || env.Field != "userId" {
			t.Fatalf("%s: %d %+v", target, rr.Code, env)
		}
	}
	if called != 1 {
		t.Fatalf("handler called %d times, want 1", called)
	}
}
