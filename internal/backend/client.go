// Package backend is the HTTP client for the auction backend. Payment and
// favorite endpoints speak JSON, member and reply endpoints take
// form-encoded bodies.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"auction-web/internal/pageerrors"
	"auction-web/utils"

	"golang.org/x/net/publicsuffix"
)

// HeaderRequestID carries the page server request id to the backend
const HeaderRequestID = "X-Request-ID"

const maxBodyBytes = 1 << 20

// RawResponse is an undecoded answer, for callers that classify the body
// themselves.
type RawResponse struct {
	Status int
	Body   []byte
}

// Client talks to the auction backend
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// NewClient creates a Client rooted at baseURL. timeout caps every call that
// does not set a tighter one.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("backend: parse base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend: base url %q must be absolute", baseURL)
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// NewJar creates the cookie jar of one page session. The client itself has
// none: cookies the backend sets belong to the visitor whose call got them.
func NewJar() (http.CookieJar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("backend: cookie jar: %w", err)
	}
	return jar, nil
}

type ctxKey struct{}

// WithRequestID attaches the id forwarded as X-Request-ID
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

type cookieKey struct{}

// WithCookie forwards the browser's Cookie header so the backend sees the
// visitor's own login session.
func WithCookie(ctx context.Context, header string) context.Context {
	return context.WithValue(ctx, cookieKey{}, header)
}

type jarKey struct{}

// WithJar attaches the page session's jar. Cookies the backend sets are kept
// there and sent again on that session's later calls only.
func WithJar(ctx context.Context, jar http.CookieJar) context.Context {
	return context.WithValue(ctx, jarKey{}, jar)
}

func jarFrom(ctx context.Context) http.CookieJar {
	jar, _ := ctx.Value(jarKey{}).(http.CookieJar)
	return jar
}

// cookieHeader merges the session jar with the forwarded browser cookies.
// A cookie the backend set in the jar wins over the browser's stale copy.
func cookieHeader(ctx context.Context, u *url.URL) string {
	var parts []string
	seen := map[string]bool{}
	if jar := jarFrom(ctx); jar != nil {
		for _, ck := range jar.Cookies(u) {
			seen[ck.Name] = true
			parts = append(parts, ck.Name+"="+ck.Value)
		}
	}
	if header, ok := ctx.Value(cookieKey{}).(string); ok && header != "" {
		// Request.Cookies skips malformed pairs instead of failing the header
		forwarded := (&http.Request{Header: http.Header{"Cookie": {header}}}).Cookies()
		for _, ck := range forwarded {
			if !seen[ck.Name] {
				parts = append(parts, ck.Name+"="+ck.Value)
			}
		}
	}
	return strings.Join(parts, "; ")
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return utils.GenerateID()
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}

// send issues one request and reads the whole body. Only network failures
// are returned as errors; the status is left to the caller.
func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader) (RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return RawResponse{}, pageerrors.NewTransportError(0, "", fmt.Errorf("build %s %s: %w", method, path, err))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestIDFrom(ctx))
	if cookie := cookieHeader(ctx, req.URL); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		utils.Warn("backend: request failed", map[string]any{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return RawResponse{}, pageerrors.NewTransportError(0, "", fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	if jar := jarFrom(ctx); jar != nil {
		if rc := resp.Cookies(); len(rc) > 0 {
			jar.SetCookies(resp.Request.URL, rc)
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return RawResponse{}, pageerrors.NewTransportError(resp.StatusCode, "", fmt.Errorf("read %s %s: %w", method, path, err))
	}

	utils.Debug("backend: request done", map[string]any{
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})
	return RawResponse{Status: resp.StatusCode, Body: raw}, nil
}

// call sends the request and decodes the answer into out.
//
// A 2xx body that does not decode is a transport error. A non-2xx answer is
// a transport error carrying the body's message; its body is still decoded
// into out when it is JSON, so callers can inspect conflict details.
func (c *Client) call(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	res, err := c.send(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}

	if isSuccess(res.Status) {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(res.Body, out); err != nil {
			return pageerrors.NewTransportError(res.Status, "", fmt.Errorf("decode %s %s: %w", method, path, errors.Join(pageerrors.ErrUnexpectedShape, err)))
		}
		return nil
	}

	if out != nil {
		_ = json.Unmarshal(res.Body, out)
	}
	return pageerrors.NewTransportError(res.Status, ErrorMessage(res.Body), fmt.Errorf("%s %s: status %d", method, path, res.Status))
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("backend: encode %s: %w", path, err)
	}
	return c.call(ctx, http.MethodPost, path, "application/json", bytes.NewReader(payload), out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.call(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), out)
}

// ErrorMessage extracts "message" from a JSON error body, or "" when the
// body is not a JSON object.
func ErrorMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
