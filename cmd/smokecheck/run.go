package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/smokecheck/pkg/check"
	"github.com/vertti/smokecheck/pkg/endpoint"
	"github.com/vertti/smokecheck/pkg/logger"
	"github.com/vertti/smokecheck/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a check, prints the result, and returns an error if failed.
// The returned error causes the process to exit with code 1.
func runCheck(c check.Checker, p *output.Printer) error {
	result := c.Run()
	p.Result(result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}

func newLogger(cmd *cobra.Command) *logger.ConsoleLogger {
	return logger.NewConsoleLogger(cmd.ErrOrStderr(), logLevel)
}

func newVerifier(baseURL string, log *logger.ConsoleLogger) *endpoint.Verifier {
	return &endpoint.Verifier{
		BaseURL: baseURL,
		Timeout: timeout,
		Headers: parseHeaders(headers),
		Client: &endpoint.RealHTTPClient{
			Timeout:         timeout,
			Insecure:        insecure,
			FollowRedirects: true,
		},
		Log: log,
	}
}
