package main

import (
	"fmt"
	"os"

	"github.com/renl/dirinfo/internal/cli"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.NewCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
