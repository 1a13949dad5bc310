// Package ch reads the columnar answer log over clickhouse-go v2
package ch

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures clickhouse client
type Config struct {
	URL  string
	Role string // reported in client info, e.g. "api"
	Tag  string // build tag reported in client info
}

// Rows is the part of driver.Rows the answer reader iterates
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// CH is a read only clickhouse connection
type CH struct {
	query func(ctx context.Context, sql string, args ...any) (Rows, error)
	ping  func(ctx context.Context) error
	close func() error
}

var openConn = clickhouse.Open

// Open parses the DSN, dials and pings
func Open(ctx context.Context, cfg Config) (*CH, error) {
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("clickhouse dsn: %w", err)
	}
	opts.ClientInfo = clientInfo(cfg.Role, cfg.Tag)

	conn, err := openConn(opts)
	if err != nil {
		return nil, fmt.Errorf("clickhouse open: %w", err)
	}
	c := fromConn(conn)
	if err := c.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("clickhouse ping: %w", err)
	}
	return c, nil
}

func fromConn(conn driver.Conn) *CH {
	return &CH{
		query: func(ctx context.Context, sql string, args ...any) (Rows, error) {
			return conn.Query(ctx, sql, args...)
		},
		ping:  conn.Ping,
		close: conn.Close,
	}
}

// Query runs a select
func (c *CH) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	if c == nil || c.query == nil {
		return nil, errors.New("ch: not connected")
	}
	return c.query(ctx, sql, args...)
}

// Ping checks connectivity
func (c *CH) Ping(ctx context.Context) error {
	if c == nil || c.ping == nil {
		return errors.New("ch: not connected")
	}
	return c.ping(ctx)
}

// Close closes resources
func (c *CH) Close() error {
	if c == nil || c.close == nil {
		return nil
	}
	return c.close()
}
