package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ListBranches returns the local branch names of the repository in dir,
// in git's ref order.
func ListBranches(ctx context.Context, runner Runner, dir string) ([]string, error) {
	if !IsRepo(dir) {
		return nil, ErrNotRepository
	}

	out, err := runner.Git(ctx, dir, "branch", "--format=%(refname:short)")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrGitNotFound
		}
		return nil, fmt.Errorf("git command failed: %w", err)
	}

	return parseBranches(out), nil
}

func parseBranches(out []byte) []string {
	var branches []string
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			branches = append(branches, name)
		}
	}
	return branches
}
