package main

import (
	"os"

	"github.com/bryanwahyu/scamshield/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
