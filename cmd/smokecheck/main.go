package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "smokecheck",
	Short:         "Smoke-test the connections API of a backend",
	Long:          "smokecheck calls the REST endpoints of a running backend, checks status codes and JSON shape, and exits non-zero if any check fails.",
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runSuite,
	SilenceUsage:  true,
	SilenceErrors: true,
}
