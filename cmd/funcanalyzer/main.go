// Package main provides the funcanalyzer CLI.
package main

import (
	"os"

	"github.com/crimson206/func-analyzer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
