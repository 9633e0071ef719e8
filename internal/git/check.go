package git

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// ErrNotRepository indicates the directory has no .git entry
var ErrNotRepository = errors.New("not in a git repository")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsRepo reports whether dir directly contains a .git entry. Both a .git
// directory and a .git file (linked worktree, submodule) count.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
