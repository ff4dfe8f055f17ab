// Package main is the single-binary entrypoint for Striker.
// Striker is a local-first training companion — your progression
// lives on your machine.
package main

import "github.com/strikerhq/striker/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
