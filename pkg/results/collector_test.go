package results

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"

	"github.com/vertti/smokecheck/pkg/check"
)

type stubChecker check.Result

func (s stubChecker) Run() check.Result { return check.Result(s) }

func pass(name string) check.Result {
	return check.Result{Name: name, Status: check.StatusOK, Details: []string{"status 200"}}
}

func failed(name, detail string) check.Result {
	return check.Result{Name: name, Status: check.StatusFail, Details: []string{detail}, Err: errors.New(detail)}
}

var ignoreErr = cmpopts.IgnoreFields(check.Result{}, "Err")

func TestNewCollector(t *testing.T) {
	c := NewCollector("http://localhost:8001")

	if _, err := uuid.Parse(c.RunID); err != nil {
		t.Errorf("RunID = %q, want a UUID: %v", c.RunID, err)
	}
	if c.BaseURL != "http://localhost:8001" {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
	if c.StartedAt.IsZero() {
		t.Error("StartedAt is zero")
	}
}

func TestSummary(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewCollector("http://localhost:8001")
	c.RunID = "run-1"
	c.StartedAt = start
	c.now = func() time.Time { return start.Add(1500 * time.Millisecond) }

	c.Record(pass("Backend Health Check"))
	c.Record(failed("Connections Module Health", "status 500, expected 200"))
	c.Run(stubChecker(pass("Connections Score Mock API")))

	want := Summary{
		RunID:       "run-1",
		BaseURL:     "http://localhost:8001",
		StartedAt:   start,
		Elapsed:     1500 * time.Millisecond,
		TotalRun:    3,
		TotalPassed: 2,
		Results: []check.Result{
			pass("Backend Health Check"),
			failed("Connections Module Health", "status 500, expected 200"),
			pass("Connections Score Mock API"),
		},
		Failures: []check.Result{
			failed("Connections Module Health", "status 500, expected 200"),
		},
	}

	got := c.Summary()
	if diff := cmp.Diff(want, got, ignoreErr); diff != "" {
		t.Errorf("Summary() mismatch (-want +got):\n%s", diff)
	}
	if got.AllPassed() {
		t.Error("AllPassed() = true, want false")
	}
	if got.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", got.ExitCode())
	}
}

func TestSummaryInvariants(t *testing.T) {
	tests := []struct {
		name       string
		results    []check.Result
		wantPassed int
		wantExit   int
	}{
		{"empty run", nil, 0, 0},
		{"all pass", []check.Result{pass("a"), pass("b")}, 2, 0},
		{"all fail", []check.Result{failed("a", "x"), failed("b", "y")}, 0, 1},
		{"mixed", []check.Result{pass("a"), failed("b", "y"), pass("c")}, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector("http://localhost")
			for _, r := range tt.results {
				c.Record(r)
			}
			s := c.Summary()

			if s.TotalRun != len(tt.results) {
				t.Errorf("TotalRun = %d, want %d", s.TotalRun, len(tt.results))
			}
			if s.TotalPassed != tt.wantPassed {
				t.Errorf("TotalPassed = %d, want %d", s.TotalPassed, tt.wantPassed)
			}
			if s.TotalPassed > s.TotalRun {
				t.Errorf("TotalPassed %d > TotalRun %d", s.TotalPassed, s.TotalRun)
			}
			if len(s.Failures) != s.TotalRun-s.TotalPassed {
				t.Errorf("len(Failures) = %d, want %d", len(s.Failures), s.TotalRun-s.TotalPassed)
			}
			if s.ExitCode() != tt.wantExit {
				t.Errorf("ExitCode() = %d, want %d", s.ExitCode(), tt.wantExit)
			}
			if s.AllPassed() != (tt.wantExit == 0) {
				t.Errorf("AllPassed() = %v, want %v", s.AllPassed(), tt.wantExit == 0)
			}
		})
	}
}

func TestOnRecord(t *testing.T) {
	c := NewCollector("http://localhost")
	var seen []string
	c.OnRecord = func(r check.Result) { seen = append(seen, r.Name) }

	c.Record(pass("first"))
	c.Run(stubChecker(failed("second", "boom")))

	if diff := cmp.Diff([]string{"first", "second"}, seen); diff != "" {
		t.Errorf("OnRecord order mismatch (-want +got):\n%s", diff)
	}
}

func TestResultsIsCopy(t *testing.T) {
	c := NewCollector("http://localhost")
	c.Record(pass("a"))

	got := c.Results()
	got[0].Name = "mutated"

	if c.Results()[0].Name != "a" {
		t.Error("Results() exposed internal slice")
	}
}
