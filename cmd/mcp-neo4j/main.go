package main

import (
	"context"
	"fmt"
	"os"
)

// Set at build time via -ldflags.
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	if err := Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
