package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/vertti/smokecheck/pkg/endpoint"
	"github.com/vertti/smokecheck/pkg/expect"
	"github.com/vertti/smokecheck/pkg/output"
)

var (
	checkMethod    string
	checkStatus    []int
	checkTolerate  []int
	checkJSONPaths []string
	checkBody      string
	checkBodyFile  string
)

var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Verify a single endpoint relative to the base URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runEndpointCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkMethod, "method", http.MethodGet, "HTTP method")
	checkCmd.Flags().IntSliceVar(&checkStatus, "status", nil, "accepted status whose body is checked, can be repeated (default 200)")
	checkCmd.Flags().IntSliceVar(&checkTolerate, "tolerate", nil, "accepted status whose body is ignored, can be repeated")
	checkCmd.Flags().StringArrayVar(&checkJSONPaths, "json-path", nil, "JSON path that must exist (path) or match (path=value), can be repeated")
	checkCmd.Flags().StringVar(&checkBody, "body", "", "JSON request body")
	checkCmd.Flags().StringVar(&checkBodyFile, "body-file", "", "file containing the JSON request body")

	rootCmd.AddCommand(checkCmd)
}

func runEndpointCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	if err := validateCommon(); err != nil {
		return err
	}
	if err := requireAtMostOne(flagValue{"--body", checkBody}, flagValue{"--body-file", checkBodyFile}); err != nil {
		return err
	}

	var preds []expect.Predicate
	for _, expr := range checkJSONPaths {
		p, err := expect.Path(expr)
		if err != nil {
			return fmt.Errorf("invalid --json-path %q: %w", expr, err)
		}
		preds = append(preds, p)
	}

	body, err := requestBody(checkBody, checkBodyFile)
	if err != nil {
		return err
	}

	target, err := resolveBaseURL(baseURL, envFile, lookupEnv)
	if err != nil {
		return err
	}

	method := strings.ToUpper(checkMethod)
	c := endpoint.Check{
		Name:     method + " " + path,
		Method:   method,
		Path:     path,
		Expect:   checkStatus,
		Tolerate: checkTolerate,
	}
	if body != nil {
		c.Body = body
	}
	if len(preds) > 0 {
		c.Assert = expect.All(preds...)
	}

	v := newVerifier(target, newLogger(cmd))
	return runCheck(v.Checker(c), output.New(cmd.OutOrStdout(), verbose))
}

// requestBody returns the raw JSON body from --body or --body-file, or nil.
func requestBody(inline, file string) (json.RawMessage, error) {
	raw := []byte(inline)
	if file != "" {
		data, err := os.ReadFile(file) //nolint:gosec // intentional: user-supplied body file
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
		raw = data
	}
	if len(raw) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("request body is not valid JSON")
	}
	return json.RawMessage(raw), nil
}

// parseHeaders converts ["key:value", ...] to map[string]string
func parseHeaders(headers []string) map[string]string {
	result := make(map[string]string)
	for _, h := range headers {
		parts := strings.SplitN(h, ":", 2)
		if len(parts) == 2 {
			result[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	return result
}
