package ch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2"
)

type fakeRows struct {
	vals []int64
	i    int
}

func (r *fakeRows) Next() bool { r.i++; return r.i <= len(r.vals) }
func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.vals[r.i-1]
	return nil
}
func (r *fakeRows) Err() error   { return nil }
func (r *fakeRows) Close() error { return nil }

func TestCH_QueryPingClose(t *testing.T) {
	var gotSQL string
	closed := false
	c := &CH{
		query: func(_ context.Context, sql string, _ ...any) (Rows, error) {
			gotSQL = sql
			return &fakeRows{vals: []int64{7, 9}}, nil
		},
		ping:  func(context.Context) error { return nil },
		close: func() error { closed = true; return nil },
	}

	rows, err := c.Query(context.Background(), "SELECT user_id FROM answer")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		ids = append(ids, id)
	}
	if gotSQL != "SELECT user_id FROM answer" || len(ids) != 2 || ids[1] != 9 {
		t.Fatalf("sql %q ids %v", gotSQL, ids)
	}
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := c.Close(); err != nil || !closed {
		t.Fatalf("Close = %v closed %v", err, closed)
	}
}

func TestCH_NotConnected(t *testing.T) {
	var c *CH
	if _, err := c.Query(context.Background(), "SELECT 1"); err == nil {
		t.Fatalf("nil Query should fail")
	}
	if err := c.Ping(context.Background()); err == nil {
		t.Fatalf("nil Ping should fail")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("nil Close = %v", err)
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://nope"}); err == nil || !strings.Contains(err.Error(), "dsn") {
		t.Fatalf("bad dsn err = %v", err)
	}

	prev := openConn
	t.Cleanup(func() { openConn = prev })
	openConn = func(*clickhouse.Options) (clickhouse.Conn, error) { return nil, errors.New("dial refused") }

	_, err := Open(context.Background(), Config{URL: "clickhouse://default@localhost:9000/answers"})
	if err == nil || !strings.Contains(err.Error(), "dial refused") {
		t.Fatalf("open err = %v", err)
	}
}

func TestClientInfo(t *testing.T) {
	info := clientInfo("api", "")
	got := map[string]string{}
	for _, p := range info.Products {
		got[p.Name] = p.Version
	}
	if got["role"] != "api" || got["answerlog"] != "unknown" || got["go"] == "" {
		t.Fatalf("products = %v", got)
	}
}
