package main

import (
	"os"

	"prepstock/cmd/cli/cmd"
	"prepstock/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
