package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"answerlog/internal/adapters/answersvc"
	"answerlog/internal/core/answer"
	"answerlog/internal/platform/config"
	phttp "answerlog/internal/platform/net/http"
	"answerlog/internal/platform/store"
	answersmod "answerlog/internal/services/answers/module"
	logicmod "answerlog/internal/services/answerlogic/module"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func ts(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

// chRows replays records in the column order the answers repo selects
type chRows struct {
	recs []answer.Record
	i    int
}

func (r *chRows) Next() bool { r.i++; return r.i <= len(r.recs) }
func (r *chRows) Scan(dest ...any) error {
	rec := r.recs[r.i-1]
	*(dest[0].(*int64)) = rec.ID
	*(dest[1].(*int64)) = rec.UserID
	*(dest[2].(*int64)) = rec.QuestionID
	*(dest[3].(*string)) = rec.Answer
	*(dest[4].(**time.Time)) = rec.AnswerDate
	return nil
}
func (r *chRows) Err() error { return nil }
func (r *chRows) Close()     {}

// fakeCH filters a fixed log on the bound user or question id
type fakeCH struct{ recs []answer.Record }

func (f *fakeCH) Ping(context.Context) error { return nil }
func (f *fakeCH) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	out := f.recs
	if len(args) == 1 {
		id := args[0].(int64)
		out = nil
		for _, r := range f.recs {
			if (strings.Contains(sql, "user_id = ?") && r.UserID == id) ||
				(strings.Contains(sql, "question_id = ?") && r.QuestionID == id) {
				out = append(out, r)
			}
		}
	}
	return &chRows{recs: out}, nil
}

var fixture = []answer.Record{
	{ID: 1, UserID: 1, QuestionID: 2, Answer: "5ft 10in", AnswerDate: ts("2023-01-01")},
	{ID: 2, UserID: 2, QuestionID: 2, Answer: "5ft 0in", AnswerDate: ts("2023-01-01")},
	{ID: 3, UserID: 2, QuestionID: 2, Answer: "5ft 1in", AnswerDate: ts("2022-01-01")},
	{ID: 4, UserID: 1, QuestionID: 5, Answer: "Good", AnswerDate: ts("2023-05-01")},
}

func serve(t *testing.T, opt Options) *httptest.Server {
	t.Helper()
	mux := chi.NewRouter()
	if err := Mount(phttp.AdaptChi(mux), opt); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getData(t *testing.T, url string, into any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	env := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	if into != nil && resp.StatusCode == http.StatusOK {
		if err := json.Unmarshal(env.Data, into); err != nil {
			t.Fatalf("decode data %s: %v", env.Data, err)
		}
	}
	return resp.StatusCode
}

func localOptions() Options {
	return Options{
		Config:        config.New().Prefix("TEST_API_"),
		Store:         &store.Store{CH: &fakeCH{recs: fixture}},
		EnableMetrics: true,
		Registry:      prometheus.NewRegistry(),
		Answers:       answersmod.Options{Backend: answersmod.BackendClickhouse},
	}
}

func TestMount_LocalSource(t *testing.T) {
	srv := serve(t, localOptions())

	var users []int64
	if code := getData(t, srv.URL+"/api/v1/answer-logic/users/height/min/61", &users); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if !reflect.DeepEqual(users, []int64{1}) {
		t.Fatalf("users = %v", users)
	}

	var rows []answer.Record
	if code := getData(t, srv.URL+"/api/v1/answers/users/2", &rows); code != http.StatusOK || len(rows) != 2 {
		t.Fatalf("answers = %d rows, status %d", len(rows), code)
	}

	var backends struct {
		Answers   string `json:"answers"`
		Selection string `json:"selection"`
	}
	getData(t, srv.URL+"/api/v1/meta/backends", &backends)
	if backends.Answers != "clickhouse" || backends.Selection != "local" {
		t.Fatalf("backends = %+v", backends)
	}

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	buf := new(strings.Builder)
	_, _ = io.Copy(buf, resp.Body)
	if !strings.Contains(buf.String(), "answerlog_source_fetch_total") {
		t.Fatalf("metrics missing fetch counter")
	}
}

func TestMount_RemoteSource(t *testing.T) {
	upstream := serve(t, localOptions())

	opt := Options{
		Config: config.New().Prefix("TEST_API_"),
		Store:  &store.Store{CH: &fakeCH{}},
		Answers: answersmod.Options{
			Backend: answersmod.BackendClickhouse,
		},
		Source: logicmod.SourceConfig{
			Kind:   logicmod.SourceRemote,
			Remote: answersvc.Options{BaseURL: upstream.URL + "/api/v1"},
		},
	}
	srv := serve(t, opt)

	var users []int64
	if code := getData(t, srv.URL+"/api/v1/answer-logic/users/questions/5/answers/Good", &users); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if !reflect.DeepEqual(users, []int64{1}) {
		t.Fatalf("users = %v", users)
	}
}

func TestMount_BadRemoteURL(t *testing.T) {
	opt := localOptions()
	opt.Source = logicmod.SourceConfig{Kind: logicmod.SourceRemote}
	if err := Mount(phttp.AdaptChi(chi.NewRouter()), opt); err == nil {
		t.Fatalf("expected error for missing remote url")
	}
}

func TestMount_TwiceWithoutRegistry(t *testing.T) {
	for i := 0; i < 2; i++ {
		opt := localOptions()
		opt.Registry = nil
		srv := serve(t, opt)

		resp, err := http.Get(srv.URL + "/metrics")
		if err != nil {
			t.Fatalf("mount %d metrics: %v", i, err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("mount %d metrics status = %d", i, resp.StatusCode)
		}
	}
}
