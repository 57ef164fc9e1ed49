package main

import (
	"os"

	"github.com/drover-cli/drover/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
