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

	err := cli.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
