// Package main is the entry point for the mep host.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func run(args []string) int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		reportError(os.Stderr, err)
		return 1
	}
	return 0
}
