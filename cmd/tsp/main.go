// Package main is the entry point for the tsp CLI.
package main

import (
	"os"

	"github.com/reflex-stack/tsp/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
