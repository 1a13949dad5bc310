package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type sliceRows struct {
	ids    []int64
	i      int
	err    error
	closed bool
}

func (r *sliceRows) Next() bool { r.i++; return r.i <= len(r.ids) }
func (r *sliceRows) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.ids[r.i-1]
	return nil
}
func (r *sliceRows) Err() error { return r.err }
func (r *sliceRows) Close()     { r.closed = true }

type sliceQuerier struct {
	rows *sliceRows
	err  error
	sql  string
	args []any
}

func (q *sliceQuerier) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	q.sql, q.args = sql, args
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func scanID(r Row) (int64, error) {
	var id int64
	err := r.Scan(&id)
	return id, err
}

func TestMany(t *testing.T) {
	q := &sliceQuerier{rows: &sliceRows{ids: []int64{3, 5}}}
	got, err := Many(context.Background(), q, scanID, "select user_id from answer where question_id = $1", int64(2))
	if err != nil || len(got) != 2 || got[1] != 5 {
		t.Fatalf("Many = (%v,%v)", got, err)
	}
	if !q.rows.closed || len(q.args) != 1 {
		t.Fatalf("closed %v args %v", q.rows.closed, q.args)
	}

	q = &sliceQuerier{err: errors.New("conn reset")}
	if _, err := Many(context.Background(), q, scanID, "select 1"); err == nil {
		t.Fatalf("expected query error")
	}
}

func TestCollect_ErrorsCloseRows(t *testing.T) {
	rows := &sliceRows{ids: []int64{1}, err: errors.New("stream cut")}
	if _, err := Collect(rows, scanID); err == nil || !rows.closed {
		t.Fatalf("err %v closed %v", err, rows.closed)
	}

	rows = &sliceRows{ids: []int64{1, 2}}
	bad := func(Row) (int64, error) { return 0, errors.New("bad column") }
	if _, err := Collect(rows, bad); err == nil || !rows.closed {
		t.Fatalf("scan err %v closed %v", err, rows.closed)
	}
}

func TestCollect_EmptyIsNil(t *testing.T) {
	got, err := Collect(&sliceRows{}, scanID)
	if err != nil || got != nil {
		t.Fatalf("Collect = (%v,%v)", got, err)
	}
}

func TestOpen_NothingEnabled(t *testing.T) {
	s, err := Open(context.Background(), Config{}, zerolog.Nop())
	if err != nil || s.PG != nil || s.CH != nil {
		t.Fatalf("Open = (%+v,%v)", s, err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close = %v", err)
	}
}

func TestClose_JoinsErrors(t *testing.T) {
	calls := 0
	s := &Store{closers: []func() error{
		func() error { calls++; return errors.New("pg") },
		func() error { calls++; return nil },
	}}
	if err := s.Close(); err == nil || calls != 2 {
		t.Fatalf("err %v calls %d", err, calls)
	}
	if err := s.Close(); err != nil || calls != 2 {
		t.Fatalf("second close err %v calls %d", err, calls)
	}
}
