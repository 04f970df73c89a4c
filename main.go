package main

import (
	"fmt"
	"os"

	"github.com/ytget/countries/internal/cli"
	"github.com/ytget/countries/internal/logger"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	logger.Version = version

	exitCode := 0
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
