// Package main provides the CLI for litcodec development tools.
package main

import (
	"os"

	"github.com/lit-labs/litcodec/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
