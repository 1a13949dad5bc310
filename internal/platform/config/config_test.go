package config

import (
	"testing"
	"time"
)

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}

func TestMustString(t *testing.T) {
	pg := New().Prefix("SERVICE_").Prefix("PGSQL_")
	t.Setenv("SERVICE_PGSQL_DBURL", " postgres://answers@db/answers ")
	if got := pg.MustString("DBURL"); got != "postgres://answers@db/answers" {
		t.Fatalf("MustString = %q", got)
	}
	mustPanic(t, func() { _ = pg.MustString("UNSET") })
}

func TestMayParsers(t *testing.T) {
	c := New().Prefix("CORE_API_")
	t.Setenv("CORE_API_MAX_CONNS", "8")
	t.Setenv("CORE_API_SLOW_MS", "soon")
	t.Setenv("CORE_API_METRICS", "false")
	t.Setenv("CORE_API_SWAGGER", "maybe")
	t.Setenv("CORE_API_GRACE", "250ms")
	t.Setenv("CORE_API_TIMEOUT", "ten")

	if got := c.MayInt("MAX_CONNS", 4); got != 8 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("SLOW_MS", 500); got != 500 {
		t.Fatalf("MayInt bad value = %d, want default", got)
	}
	if got := c.MayInt("UNSET", 3); got != 3 {
		t.Fatalf("MayInt unset = %d", got)
	}
	if c.MayBool("METRICS", true) {
		t.Fatalf("MayBool = true, want false")
	}
	if !c.MayBool("SWAGGER", true) {
		t.Fatalf("MayBool bad value should fall back to true")
	}
	if got := c.MayDuration("GRACE", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("TIMEOUT", 10*time.Second); got != 10*time.Second {
		t.Fatalf("MayDuration bad value = %v", got)
	}
	if got := c.MayString("UNSET", ":4000"); got != ":4000" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CORE_API_")

	if got := c.MayEnum("ANSWERS_BACKEND", "pg", "pg", "clickhouse"); got != "pg" {
		t.Fatalf("default = %q", got)
	}

	t.Setenv("CORE_API_ANSWERS_BACKEND", "ClickHouse")
	if got := c.MayEnum("ANSWERS_BACKEND", "pg", "pg", "clickhouse"); got != "clickhouse" {
		t.Fatalf("case folded = %q", got)
	}

	t.Setenv("CORE_API_ANSWERS_BACKEND", "mysql")
	mustPanic(t, func() { _ = c.MayEnum("ANSWERS_BACKEND", "pg", "pg", "clickhouse") })
}
