package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vertti/smokecheck/pkg/logger"
)

// flagValue represents a flag name and its current value for validation.
type flagValue struct {
	name  string
	value string
}

// requireAtMostOne returns an error if more than one of the given flags is set (non-empty).
func requireAtMostOne(flags ...flagValue) error {
	var set []string
	for _, f := range flags {
		if f.value != "" {
			set = append(set, f.name)
		}
	}

	if len(set) > 1 {
		return fmt.Errorf("only one of %s can be specified", strings.Join(set, ", "))
	}
	return nil
}

// oneOf returns an error if value is not one of allowed.
func oneOf(name, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid %s %q: must be one of %s", name, value, strings.Join(allowed, ", "))
}

// validateCommon checks the flags shared by every command.
func validateCommon() error {
	if !logger.ValidLevel(logLevel) {
		return oneOf("--log-level", logLevel, logger.LevelDebug, logger.LevelInfo, logger.LevelWarn, logger.LevelError)
	}
	if timeout <= 0 {
		return fmt.Errorf("--timeout must be positive, got %s", timeout)
	}
	for _, h := range headers {
		if !strings.Contains(h, ":") {
			return fmt.Errorf("invalid --header %q: want key:value", h)
		}
	}
	return nil
}
