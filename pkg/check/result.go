package check

import (
	"strings"
	"time"
)

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name     string        // e.g., "Backend Health Check"
	Status   Status        // OK or FAIL
	Details  []string      // human-readable details
	Err      error         // classified fault for failures
	Duration time.Duration // wall time spent on the request
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Detail returns the details as a single line.
func (r Result) Detail() string {
	return strings.Join(r.Details, ", ")
}
