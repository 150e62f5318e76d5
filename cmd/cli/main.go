// Package main is the entry point for the roadcost CLI.
package main

import (
	"os"

	"roadcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
