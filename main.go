package main

import (
	"fmt"
	"os"

	"github.com/ytget/dynamic-island/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dynamic-island: %v\n", err)
		os.Exit(1)
	}
}
