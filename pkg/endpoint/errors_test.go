package endpoint

import (
	"errors"
	"fmt"
	"testing"
)

func TestFaultKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("plain"), ""},
		{fmt.Errorf("%w: bad base URL", ErrRequest), "request"},
		{fmt.Errorf("%w: connection refused", ErrTransport), "transport"},
		{fmt.Errorf("%w: status 500", ErrUnexpectedStatus), "status"},
		{fmt.Errorf("%w: not JSON", ErrDecode), "decode"},
		{fmt.Errorf("%w: ok: got false", ErrAssertion), "assertion"},
	}

	for _, tt := range tests {
		if got := FaultKind(tt.err); got != tt.want {
			t.Errorf("FaultKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
