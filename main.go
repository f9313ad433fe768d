// Package main is the entry point for the issuemgr CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/issuemgr/issuemgr/cmd"
	"github.com/issuemgr/issuemgr/internal/logging"
)

// main executes the root command and handles any errors that occur.
func main() {
	logging.Debug("starting issuemgr", "version", cmd.Version)

	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
