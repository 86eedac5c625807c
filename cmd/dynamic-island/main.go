package main

import (
	"log"

	"github.com/ytget/dynamic-island/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
