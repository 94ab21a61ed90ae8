// Package main provides the entry point for the saveslot CLI tool.
package main

import "github.com/agentstation/saveslot/cmd/saveslot/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
