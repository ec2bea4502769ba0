// Command reduce is the CLI front end for the adaptive
// prefix-assignment symmetry reduction engine (spec.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/pkaski/reduce/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
