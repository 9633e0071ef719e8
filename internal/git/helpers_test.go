package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// resolveTempDir returns t.TempDir() with symlinks resolved (macOS /var -> /private/var).
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// requireGit skips the test when git is not installed.
func requireGit(t *testing.T) {
	t.Helper()
	if err := CheckGit(); err != nil {
		t.Skip("git not available")
	}
}

// runGit runs a git command for test setup.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := ExecRunner{}.Git(context.Background(), dir, args...)
	if err != nil {
		t.Fatalf("git %v failed: %v", args, err)
	}
	return strings.TrimSpace(string(out))
}

// setupTestRepo creates a git repo with main branch, initial commit, and git config.
// Returns the resolved repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)

	repoPath := filepath.Join(resolveTempDir(t), "test-repo")
	runGit(t, "", "init", "-b", "main", repoPath)
	runGit(t, repoPath, "config", "user.email", "test@test.com")
	runGit(t, repoPath, "config", "user.name", "Test User")
	runGit(t, repoPath, "config", "commit.gpgsign", "false")

	commitFile(t, repoPath, "README.md", "# test\n", "Initial commit")
	return repoPath
}

// commitFile writes name and commits it.
func commitFile(t *testing.T, repoPath, name, content, msg string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	runGit(t, repoPath, "add", name)
	runGit(t, repoPath, "commit", "-m", msg)
}

// fakeRepoDir returns a directory that passes IsRepo without being a real
// repository.
func fakeRepoDir(t *testing.T) string {
	t.Helper()
	dir := resolveTempDir(t)
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

// fakeRunner returns scripted output keyed by the space-joined args and
// records every call.
type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Git(_ context.Context, _ string, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)

	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if out, ok := f.outputs[key]; ok {
		return []byte(out), nil
	}
	return nil, errors.New("unexpected git call: " + key)
}

func (f *fakeRunner) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == key {
			n++
		}
	}
	return n
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
