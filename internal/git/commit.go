package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// shortHashLen is the abbreviation length used by the go-git fallback.
const shortHashLen = 7

// ShortCommit returns the abbreviated hash of HEAD in dir. It asks the git
// CLI first and reads the repository with go-git if that fails.
func ShortCommit(ctx context.Context, runner Runner, dir string) (string, error) {
	return shortCommit(ctx, runner, dir, openHeadHash)
}

func shortCommit(ctx context.Context, runner Runner, dir string, fallback func(string) (string, error)) (string, error) {
	out, cliErr := runner.Git(ctx, dir, "rev-parse", "--short", "HEAD")
	if cliErr == nil {
		if hash := strings.TrimSpace(string(out)); hash != "" {
			return hash, nil
		}
		cliErr = errors.New("empty rev-parse output")
	}

	if fallback == nil {
		return "", fmt.Errorf("resolve HEAD: %w", cliErr)
	}

	hash, err := fallback(dir)
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", errors.Join(cliErr, err))
	}
	if len(hash) > shortHashLen {
		hash = hash[:shortHashLen]
	}
	return hash, nil
}

// openHeadHash reads the full HEAD hash with go-git.
func openHeadHash(dir string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	return head.Hash().String(), nil
}
