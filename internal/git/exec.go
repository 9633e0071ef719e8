package git

import (
	"context"

	"github.com/raphi011/loco-pilot/internal/cmd"
)

// Runner executes git commands. It exists so tests can count and script
// subprocess invocations.
type Runner interface {
	Git(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// ExecRunner runs the git binary from PATH.
type ExecRunner struct{}

// Git executes git in dir and returns stdout. Errors carry git's stderr.
func (ExecRunner) Git(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}
