// Package main is the entry point for the overlearnd daemon.
package main

import (
	"os"

	"github.com/overlearn/overlearn/internal/daemon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
