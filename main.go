package main

import (
	"fmt"
	"os"

	"github.com/marcodamonte/jarray/internal/cli"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Run:
//
//	go run . sort
//	go run . sort --reverse b a c
//	go run . trace --n 18
//	go run . --metrics sort
func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
