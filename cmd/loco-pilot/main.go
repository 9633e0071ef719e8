package main

import (
	"fmt"
	"runtime"
)

// Version information - set by goreleaser
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}

// versionString returns the version string for --version.
func versionString() string {
	return fmt.Sprintf("loco-pilot %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
