// Package endpoint verifies single HTTP endpoints of a remote service:
// one request, an accepted status set, JSON decoding and an optional
// predicate over the decoded body.
package endpoint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vertti/smokecheck/pkg/check"
	"github.com/vertti/smokecheck/pkg/expect"
	"github.com/vertti/smokecheck/pkg/logger"
)

// DefaultTimeout bounds each request when the Verifier sets none.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

// excerptLen caps how much of a body is quoted in failure details.
const excerptLen = 120

// Check describes one endpoint call and how to judge it.
type Check struct {
	Name     string                 // logical test name (required)
	Method   string                 // HTTP method (default: GET)
	Path     string                 // path relative to the base URL, may carry a query
	Body     any                    // JSON-encoded request body when non-nil
	Expect   []int                  // accepted statuses whose body is decoded (default: 200)
	Tolerate []int                  // accepted statuses whose body is not inspected
	Assert   expect.Predicate       // optional predicate over the decoded body
	Describe func(*Response) string // optional detail line drawn from the response
}

// Response is what a check observed.
type Response struct {
	Status  int
	Raw     []byte
	Body    gjson.Result // zero unless Decoded
	Decoded bool
}

// Verifier runs checks against one base URL.
type Verifier struct {
	BaseURL string                // e.g., "https://api.example.com" (required)
	Timeout time.Duration         // per-request timeout (default: 10s)
	Headers map[string]string     // extra headers sent with every request
	Client  HTTPClient            // injected for testing
	Log     *logger.ConsoleLogger // request traces at debug level; may be nil
}

// Verify performs the check and returns its result. It never panics or
// returns an error; every fault becomes a failed Result.
func (v *Verifier) Verify(c Check) check.Result {
	result, _ := v.VerifyResponse(c)
	return result
}

// VerifyResponse is Verify that also returns the response, for checks whose
// data feeds a later check. The response is nil when no status was received.
func (v *Verifier) VerifyResponse(c Check) (check.Result, *Response) {
	start := time.Now()
	result, resp := v.verify(c)
	result.Duration = time.Since(start)
	return result, resp
}

// Checker binds c to v.
func (v *Verifier) Checker(c Check) check.Checker {
	return boundCheck{v: v, c: c}
}

type boundCheck struct {
	v *Verifier
	c Check
}

func (b boundCheck) Run() check.Result {
	return b.v.Verify(b.c)
}

func (v *Verifier) verify(c Check) (check.Result, *Response) {
	result := check.Result{Name: c.Name}

	method := c.Method
	if method == "" {
		method = http.MethodGet
	}
	expected := c.Expect
	if len(expected) == 0 {
		expected = []int{http.StatusOK}
	}

	target, err := v.resolve(c.Path)
	if err != nil {
		return fail(&result, ErrRequest, "%v", err), nil
	}

	req, err := v.newRequest(method, target, c.Body)
	if err != nil {
		return fail(&result, ErrRequest, "failed to create request: %v", err), nil
	}

	start := time.Now()
	httpResp, err := v.client().Do(req)
	if err != nil {
		v.Log.Debugf("%s %s -> error after %s: %v", method, target, time.Since(start).Round(time.Millisecond), err)
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return fail(&result, ErrTransport, "request timed out after %s: %v", v.timeout(), err), nil
		}
		return fail(&result, ErrTransport, "request failed: %v", err), nil
	}
	defer func() { _ = httpResp.Body.Close() }()

	resp := &Response{Status: httpResp.StatusCode}
	v.Log.Debugf("%s %s -> %d (%s)", method, target, resp.Status, time.Since(start).Round(time.Millisecond))

	switch {
	case slices.Contains(expected, resp.Status):
	case slices.Contains(c.Tolerate, resp.Status):
		_, _ = io.Copy(io.Discard, io.LimitReader(httpResp.Body, maxBodyBytes))
		return result.Pass(describe(c, resp)), resp
	default:
		return fail(&result, ErrUnexpectedStatus, "status %d, expected %s", resp.Status,
			formatStatuses(append(slices.Clone(expected), c.Tolerate...))), resp
	}

	resp.Raw, err = io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return fail(&result, ErrTransport, "failed to read response body: %v", err), resp
	}

	if !gjson.ValidBytes(resp.Raw) {
		return fail(&result, ErrDecode, "status %d, invalid JSON response: %s", resp.Status, excerpt(resp.Raw)), resp
	}
	resp.Body = gjson.ParseBytes(resp.Raw)
	resp.Decoded = true

	if c.Assert != nil {
		if err := c.Assert(resp.Body); err != nil {
			failed := fail(&result, ErrAssertion, "%v", err)
			if d := describe(c, resp); d != "" {
				failed.Details = append(failed.Details, d)
			}
			return failed, resp
		}
	}

	return result.Pass(describe(c, resp)), resp
}

func (v *Verifier) resolve(path string) (string, error) {
	base, err := url.Parse(v.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("invalid base URL: %q", v.BaseURL)
	}
	return strings.TrimRight(v.BaseURL, "/") + "/" + strings.TrimLeft(path, "/"), nil
}

func (v *Verifier) newRequest(method, target string, body any) (*http.Request, error) {
	var bodyReader io.Reader = http.NoBody
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, target, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, val := range v.Headers {
		req.Header.Set(k, val)
	}
	return req, nil
}

func (v *Verifier) client() HTTPClient {
	if v.Client == nil {
		v.Client = &RealHTTPClient{Timeout: v.timeout(), FollowRedirects: true}
	}
	return v.Client
}

func (v *Verifier) timeout() time.Duration {
	if v.Timeout <= 0 {
		return DefaultTimeout
	}
	return v.Timeout
}

// fail records a failure whose detail is the formatted message and whose
// error wraps kind.
func fail(r *check.Result, kind error, format string, args ...any) check.Result {
	detail := fmt.Sprintf(format, args...)
	return r.Fail(detail, fmt.Errorf("%w: %s", kind, detail))
}

func describe(c Check, resp *Response) string {
	if c.Describe != nil {
		return c.Describe(resp)
	}
	return "status " + strconv.Itoa(resp.Status)
}

// formatStatuses renders {200} as "200" and {200, 201, 404} as "200, 201 or 404".
func formatStatuses(codes []int) string {
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = strconv.Itoa(code)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}

func excerpt(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "empty body"
	}
	if len(s) > excerptLen {
		s = s[:excerptLen] + "..."
	}
	return strconv.Quote(s)
}
