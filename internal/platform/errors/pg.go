package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgCode maps a postgres SQLSTATE to a code; the answer log is read only so
// write side states (unique, fk, serialization) never reach here
func pgCode(state string) ErrorCode {
	switch {
	case strings.HasPrefix(state, "08"), // connection exception
		strings.HasPrefix(state, "53"), // insufficient resources
		state == "57P01", state == "57P02", state == "57P03", // shutdown, cannot connect now
		state == "57014": // query canceled
		return ErrorCodeUnavailable
	case strings.HasPrefix(state, "22"): // data exception while reading a row
		return ErrorCodeDataIntegrity
	default:
		return ErrorCodeDB
	}
}

// FromPostgres wraps a pgx error with a code derived from its SQLSTATE;
// timeouts and cancellations are Unavailable, anything else unclassified is DB
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	switch {
	case stderrs.As(err, &pgErr):
		return WithField(Wrap(err, pgCode(pgErr.Code), msg), pgErr.ColumnName)
	case pgconn.Timeout(err), stderrs.Is(err, context.Canceled):
		return Wrap(err, ErrorCodeUnavailable, msg)
	default:
		return Wrap(err, ErrorCodeDB, msg)
	}
}
