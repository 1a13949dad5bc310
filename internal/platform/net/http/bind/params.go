package bind

import (
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	perr "answerlog/internal/platform/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Params fills T from route params (`path:"name"`) and query values (`query:"name"`)
// then validates it. Only string, bool, int and float kinds are supported
// Strings are kept byte for byte; numbers and bools tolerate surrounding space
func Params[T any](r *http.Request) (T, error) {
	var zero, dst T
	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return zero, perr.Newf(perr.ErrorCodeUnknown, "bind.Params needs a struct, got %s", rv.Kind())
	}
	rt := rv.Type()
	q := r.URL.Query()

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		var (
			name, raw string
			present   bool
		)
		if tag := sf.Tag.Get("path"); tag != "" {
			name, raw = tag, pathParam(r, tag)
			present = raw != ""
		} else if tag := sf.Tag.Get("query"); tag != "" {
			name, raw = tag, q.Get(tag)
			present = q.Has(tag)
		} else {
			continue
		}
		if !present {
			continue
		}
		if err := setField(rv.Field(i), raw); err != nil {
			return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s %s", name, err), name)
		}
	}

	v, _ := validate()
	if err := v.Struct(dst); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return zero, perr.Wrap(err, perr.ErrorCodeUnknown, "validator internal error")
		}
		field, msg := firstFailure(err)
		return zero, perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
	}
	return dst, nil
}

// pathParam returns the decoded route param
// chi matches on RawPath when the request carried one, so only then is the
// value still escaped; otherwise it is a segment of the already decoded Path
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if u, err := url.PathUnescape(raw); err == nil {
		return u
	}
	return raw
}

type kindError string

func (e kindError) Error() string { return string(e) }

func setField(v reflect.Value, raw string) error {
	if v.Kind() == reflect.String {
		v.SetString(raw)
		return nil
	}
	raw = strings.TrimSpace(raw)
	switch v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return kindError("must be a boolean")
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return kindError("must be an integer")
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return kindError("must be a number")
		}
		v.SetFloat(f)
	default:
		return kindError("has unsupported kind " + v.Kind().String())
	}
	return nil
}
