package endpoint

import "errors"

// Fault classes. Every failed Result from a Verifier carries an Err that
// wraps exactly one of these.
var (
	// ErrRequest means the request could not be built (bad base URL, unencodable body).
	ErrRequest = errors.New("invalid request")
	// ErrTransport covers connection errors, timeouts and DNS failures.
	ErrTransport = errors.New("transport fault")
	// ErrUnexpectedStatus means the status code is not in the accepted set.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrDecode means the body of an expected status is not valid JSON.
	ErrDecode = errors.New("invalid JSON response")
	// ErrAssertion means the body decoded but a predicate rejected it.
	ErrAssertion = errors.New("assertion failed")
)

// FaultKind names the fault class wrapped by err: "request", "transport",
// "status", "decode" or "assertion". It returns "" for nil or unclassified errors.
func FaultKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRequest):
		return "request"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrUnexpectedStatus):
		return "status"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrAssertion):
		return "assertion"
	default:
		return ""
	}
}
