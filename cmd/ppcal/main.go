package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runnerr0/ppcal/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprint(os.Stderr, cli.Usage)
		}
		os.Exit(1)
	}
}
