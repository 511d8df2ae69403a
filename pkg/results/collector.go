// Package results collects check outcomes in order and derives the run summary.
package results

import (
	"time"

	"github.com/google/uuid"

	"github.com/vertti/smokecheck/pkg/check"
)

// Collector records results in the order checks ran. It is used from a
// single goroutine.
type Collector struct {
	RunID     string
	BaseURL   string
	StartedAt time.Time

	// OnRecord, if set, is called with each result as it is recorded.
	OnRecord func(check.Result)

	results []check.Result
	now     func() time.Time
}

// NewCollector starts a run against baseURL.
func NewCollector(baseURL string) *Collector {
	return &Collector{
		RunID:     uuid.NewString(),
		BaseURL:   baseURL,
		StartedAt: time.Now(),
		now:       time.Now,
	}
}

// Record appends r and returns it.
func (c *Collector) Record(r check.Result) check.Result {
	c.results = append(c.results, r)
	if c.OnRecord != nil {
		c.OnRecord(r)
	}
	return r
}

// Run executes ch and records its result.
func (c *Collector) Run(ch check.Checker) check.Result {
	return c.Record(ch.Run())
}

// Results returns a copy of the recorded results.
func (c *Collector) Results() []check.Result {
	out := make([]check.Result, len(c.results))
	copy(out, c.results)
	return out
}

// Summary derives the run summary from what has been recorded so far.
func (c *Collector) Summary() Summary {
	s := Summary{
		RunID:     c.RunID,
		BaseURL:   c.BaseURL,
		StartedAt: c.StartedAt,
		Results:   c.Results(),
		TotalRun:  len(c.results),
	}
	if !c.StartedAt.IsZero() {
		now := c.now
		if now == nil {
			now = time.Now
		}
		s.Elapsed = now().Sub(c.StartedAt)
	}
	for _, r := range c.results {
		if r.OK() {
			s.TotalPassed++
		} else {
			s.Failures = append(s.Failures, r)
		}
	}
	return s
}
