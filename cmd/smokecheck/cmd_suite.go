package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vertti/smokecheck/pkg/connections"
	"github.com/vertti/smokecheck/pkg/endpoint"
	"github.com/vertti/smokecheck/pkg/output"
	"github.com/vertti/smokecheck/pkg/results"
)

var (
	baseURL       string
	envFile       string
	timeout       time.Duration
	headers       []string
	insecure      bool
	logLevel      string
	verbose       bool
	accountsLimit int
	outputFormat  string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&baseURL, "base-url", "", "backend base URL (default: $"+baseURLEnv+" or --env-file)")
	flags.StringVar(&envFile, "env-file", "", "dotenv file to read the base URL from")
	flags.DurationVar(&timeout, "timeout", endpoint.DefaultTimeout, "per-request timeout")
	flags.StringSliceVar(&headers, "header", nil, "custom header (key:value), can be repeated")
	flags.BoolVar(&insecure, "insecure", false, "skip TLS certificate verification")
	flags.StringVar(&logLevel, "log-level", "warn", "diagnostic log level on stderr (debug, info, warn, error)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print details for passing checks")

	rootCmd.Flags().IntVar(&accountsLimit, "accounts-limit", connections.DefaultAccountsLimit, "page size requested from the accounts list")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (text or json)")
}

func runSuite(cmd *cobra.Command, _ []string) error {
	if err := validateCommon(); err != nil {
		return err
	}
	if err := oneOf("--output", outputFormat, "text", "json"); err != nil {
		return err
	}
	if accountsLimit < 1 {
		return fmt.Errorf("--accounts-limit must be at least 1, got %d", accountsLimit)
	}

	target, err := resolveBaseURL(baseURL, envFile, lookupEnv)
	if err != nil {
		return err
	}

	log := newLogger(cmd)
	collector := results.NewCollector(target)
	log.Infof("run %s against %s (timeout %s)", collector.RunID, target, timeout)

	var printer *output.Printer
	if outputFormat == "text" {
		printer = output.New(cmd.OutOrStdout(), verbose)
		printer.Banner("connections", target)
		collector.OnRecord = printer.Result
	}

	suite := &connections.Suite{
		Verifier:      newVerifier(target, log),
		AccountsLimit: accountsLimit,
		Log:           log,
	}
	summary := suite.Run(collector)
	log.Infof("run %s finished in %s", collector.RunID, summary.Elapsed.Round(time.Millisecond))

	if printer != nil {
		printer.Summary(summary)
	} else if err := output.WriteJSON(cmd.OutOrStdout(), summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !summary.AllPassed() {
		return ErrCheckFailed
	}
	return nil
}
