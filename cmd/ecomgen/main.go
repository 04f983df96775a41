// Package main is the entry point for ecomgen.
package main

import (
	"fmt"
	"os"

	"github.com/joshika202/ecom-cursor-project/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
