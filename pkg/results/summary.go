package results

import (
	"time"

	"github.com/vertti/smokecheck/pkg/check"
)

// Summary is the derived outcome of a run.
type Summary struct {
	RunID       string
	BaseURL     string
	StartedAt   time.Time
	Elapsed     time.Duration
	TotalRun    int
	TotalPassed int
	Results     []check.Result // every result, in run order
	Failures    []check.Result // results that did not pass, in run order
}

// AllPassed reports whether every recorded check passed. A run with no
// checks counts as passed.
func (s Summary) AllPassed() bool {
	return s.TotalPassed == s.TotalRun
}

// ExitCode is 0 when all checks passed and 1 otherwise.
func (s Summary) ExitCode() int {
	if s.AllPassed() {
		return 0
	}
	return 1
}
