package main

import (
	"os"

	"github.com/harborsight/crewfit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
