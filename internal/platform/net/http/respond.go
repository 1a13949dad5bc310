// Package http holds the chi backed router, server and the JSON envelope every endpoint answers with
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "answerlog/internal/platform/errors"
	"answerlog/internal/platform/logger"
	pnet "answerlog/internal/platform/net"
	"answerlog/internal/platform/net/http/bind"
)

// Envelope is the response body of every endpoint
// data is set on success; code, error, field and op on failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	Op         string         `json:"op,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// WriteJSON writes v with status as application/json
func WriteJSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Warn().Err(err).Msg("write response")
	}
}

// RespondOK writes a 200 envelope around data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	WriteJSON(w, stdhttp.StatusOK, Envelope{
		StatusCode: stdhttp.StatusOK,
		Status:     stdhttp.StatusText(stdhttp.StatusOK),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       data,
	})
}

// RespondError writes err as an envelope with the status its code maps to
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	wire := perr.WireFrom(err)
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	WriteJSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wire.Code,
		Error:      wire.Message,
		Field:      wire.Field,
		Op:         wire.Op,
		RequestID:  pnet.RequestID(r.Context()),
	})
}

// Endpoint adapts a return style handler; the result becomes data, the error an error envelope
func Endpoint(fn func(*stdhttp.Request) (any, error)) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		out, err := fn(r)
		if err != nil {
			RespondError(w, r, err)
			return
		}
		RespondOK(w, r, out)
	}
}

// ParamsEndpoint binds T from path and query params before calling fn
// fn is not called when binding fails
func ParamsEndpoint[T any](fn func(*stdhttp.Request, T) (any, error)) stdhttp.HandlerFunc {
	return Endpoint(func(r *stdhttp.Request) (any, error) {
		in, err := bind.Params[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}
