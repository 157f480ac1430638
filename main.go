package main

import (
	"os"

	"github.com/marekjm/pocket/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "0.0.1"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
