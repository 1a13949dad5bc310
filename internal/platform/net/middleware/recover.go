package middleware

import (
	"net/http"
	"runtime/debug"

	perr "answerlog/internal/platform/errors"
	"answerlog/internal/platform/logger"
	phttp "answerlog/internal/platform/net/http"
)

// Recover turns a handler panic into a 500 error envelope and logs the stack
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")
			phttp.RespondError(w, r, perr.New(perr.ErrorCodePanic, "internal error"))
		}()
		next.ServeHTTP(w, r)
	})
}
