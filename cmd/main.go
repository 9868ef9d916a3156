package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
