package check

import "fmt"

// Pass sets the result to OK status with a detail message.
func (r *Result) Pass(detail string) Result {
	r.Status = StatusOK
	if detail != "" {
		r.Details = append(r.Details, detail)
	}
	return *r
}

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted detail message.
// The format may use %w; the wrapped error stays reachable through Err.
func (r *Result) Failf(format string, args ...any) Result {
	err := fmt.Errorf(format, args...)
	return r.Fail(err.Error(), err)
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
