// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, and logs every command through the context logger when verbose
// mode is enabled.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "status", "--porcelain=v2")
//	if err != nil {
//	    // err carries git's stderr, e.g. "fatal: not a git repository"
//	}
//
// # Design Notes
//
// loco-pilot shells out to the git CLI for status and branch queries so that
// the user's git configuration (aliases, safe.directory, fsmonitor) applies.
// Subprocesses have no timeout of their own; they end when the command
// context is cancelled.
package cmd
