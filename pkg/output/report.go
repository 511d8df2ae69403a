package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/vertti/smokecheck/pkg/check"
	"github.com/vertti/smokecheck/pkg/endpoint"
	"github.com/vertti/smokecheck/pkg/results"
)

// Report is the JSON form of a run summary.
type Report struct {
	RunID       string         `json:"run_id"`
	BaseURL     string         `json:"base_url"`
	StartedAt   time.Time      `json:"started_at"`
	ElapsedMS   int64          `json:"elapsed_ms"`
	TotalRun    int            `json:"total_run"`
	TotalPassed int            `json:"total_passed"`
	Passed      bool           `json:"passed"`
	Results     []ReportResult `json:"results"`
	Failures    []ReportResult `json:"failures"`
}

// ReportResult is the JSON form of one check result.
type ReportResult struct {
	Name       string `json:"name"`
	Passed     bool   `json:"passed"`
	Details    string `json:"details"`
	Fault      string `json:"fault,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// NewReport converts a summary into its JSON form.
func NewReport(s results.Summary) Report {
	return Report{
		RunID:       s.RunID,
		BaseURL:     s.BaseURL,
		StartedAt:   s.StartedAt,
		ElapsedMS:   s.Elapsed.Milliseconds(),
		TotalRun:    s.TotalRun,
		TotalPassed: s.TotalPassed,
		Passed:      s.AllPassed(),
		Results:     reportResults(s.Results),
		Failures:    reportResults(s.Failures),
	}
}

// WriteJSON writes the summary as an indented JSON document.
func WriteJSON(w io.Writer, s results.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(s))
}

func reportResults(rs []check.Result) []ReportResult {
	out := make([]ReportResult, 0, len(rs))
	for _, r := range rs {
		out = append(out, ReportResult{
			Name:       r.Name,
			Passed:     r.OK(),
			Details:    r.Detail(),
			Fault:      endpoint.FaultKind(r.Err),
			DurationMS: r.Duration.Milliseconds(),
		})
	}
	return out
}
