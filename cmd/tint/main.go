package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/tint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tint: %v\n", err)
		os.Exit(1)
	}
}
