// Package main is the entry point for the overlearn CLI.
package main

import (
	"os"

	"github.com/overlearn/overlearn/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
