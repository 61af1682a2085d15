// Package main provides the rockscore CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "rockscore",
		Short: "RMR14 rock mass classification for discontinuity surveys",
		Long: `Rockscore parses scanline discontinuity surveys, computes RMR14 scores
per station and per orientation family, and renders classification reports.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newClusterCmd(),
		newValidateCmd(),
		newCodesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
