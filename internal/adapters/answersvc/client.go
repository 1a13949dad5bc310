// Package answersvc reads the answer log over HTTP from a running answers API
package answersvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"answerlog/internal/core/answer"
	perr "answerlog/internal/platform/errors"
	"answerlog/internal/platform/logger"
	pnet "answerlog/internal/platform/net"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "answerlog-answersvc"
	defaultAccept  = "application/json"
	maxErrBody     = 2048
)

// Options configures the Client
type Options struct {
	// BaseURL points at the API root that serves /answers, e.g. http://host:4000/api/v1
	BaseURL   string
	User      string
	Pass      string
	UserAgent string
	Timeout   time.Duration

	// HTTPClient overrides the default client; Timeout is ignored when set
	HTTPClient *http.Client
}

// RequestConfig is the immutable per call request setup
// it is built fresh for every fetch and never stored on the Client
type RequestConfig struct {
	BaseURL   string
	User      string
	Pass      string
	Accept    string
	UserAgent string
	RequestID string
}

// Client implements answer.Store against the answers HTTP API
// no retries; callers decide what to do with an unavailable upstream
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

var _ answer.Store = (*Client)(nil)

// NewClient creates a Client with defaults filled in
func NewClient(o Options) (*Client, error) {
	o.BaseURL = strings.TrimRight(strings.TrimSpace(o.BaseURL), "/")
	if o.BaseURL == "" {
		return nil, perr.WithField(perr.InvalidArgf("answersvc: base url is required"), "url")
	}
	u, err := url.Parse(o.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, perr.WithField(perr.InvalidArgf("answersvc: bad base url %q", o.BaseURL), "url")
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{http: hc, opts: o, log: *logger.Named("answersvc")}, nil
}

// config builds the per call request setup
// request id precedence is opts, then ctx, then a fresh uuid
func (c *Client) config(ctx context.Context, fo answer.FetchOptions) RequestConfig {
	rid := fo.RequestID
	if rid == "" {
		rid = pnet.RequestID(ctx)
	}
	if rid == "" {
		rid = uuid.NewString()
	}
	return RequestConfig{
		BaseURL:   c.opts.BaseURL,
		User:      c.opts.User,
		Pass:      c.opts.Pass,
		Accept:    defaultAccept,
		UserAgent: c.opts.UserAgent,
		RequestID: rid,
	}
}

// FetchAll implements answer.Store
func (c *Client) FetchAll(ctx context.Context, opts answer.FetchOptions) ([]answer.Record, error) {
	return c.get(ctx, c.config(ctx, opts), "/answers", opts.RecentOnly)
}

// FetchByUser implements answer.Store
func (c *Client) FetchByUser(ctx context.Context, userID int64, opts answer.FetchOptions) ([]answer.Record, error) {
	return c.get(ctx, c.config(ctx, opts), "/answers/users/"+strconv.FormatInt(userID, 10), opts.RecentOnly)
}

// FetchByQuestion implements answer.Store
func (c *Client) FetchByQuestion(ctx context.Context, questionID int64, opts answer.FetchOptions) ([]answer.Record, error) {
	return c.get(ctx, c.config(ctx, opts), "/answers/questions/"+strconv.FormatInt(questionID, 10), opts.RecentOnly)
}

func (c *Client) get(ctx context.Context, rc RequestConfig, path string, recent bool) ([]answer.Record, error) {
	target := rc.BaseURL + path + "?recent=" + strconv.FormatBool(recent)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "answersvc new request failed")
	}
	req.Header.Set("Accept", rc.Accept)
	req.Header.Set("User-Agent", rc.UserAgent)
	req.Header.Set("X-Request-Id", rc.RequestID)
	if rc.User != "" || rc.Pass != "" {
		req.SetBasicAuth(rc.User, rc.Pass)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, perr.Wrapf(ctx.Err(), perr.ErrorCodeUnavailable, "answersvc %s canceled", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "answersvc %s failed", path)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("path", path).
		Bool("recent", recent).
		Int("status", resp.StatusCode).
		Str("request_id", rc.RequestID).
		Dur("latency", time.Since(start)).
		Msg("answersvc http response")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrBody))
		return []answer.Record{}, nil
	case resp.StatusCode >= 500:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return nil, perr.Newf(perr.ErrorCodeUnavailable, "answersvc %s status %d body %s", path, resp.StatusCode, string(body))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return nil, perr.Newf(perr.ErrorCodeUnknown, "answersvc %s unexpected status %d body %s", path, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "answersvc %s read failed", path)
	}
	return decode(body)
}

// decode accepts the JSON envelope or a bare array of records
func decode(body []byte) ([]answer.Record, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []answer.Record{}, nil
	}
	var out []answer.Record
	if body[0] == '[' {
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, "answersvc decode records")
		}
	} else {
		var env struct {
			Data []answer.Record `json:"data"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, "answersvc decode envelope")
		}
		out = env.Data
	}
	if out == nil {
		out = []answer.Record{}
	}
	return out, nil
}
