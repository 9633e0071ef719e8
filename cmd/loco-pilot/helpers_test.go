package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/raphi011/loco-pilot/internal/config"
	"github.com/raphi011/loco-pilot/internal/env"
	"github.com/raphi011/loco-pilot/internal/git"
	uiprompt "github.com/raphi011/loco-pilot/internal/ui/prompt"
)

const (
	statusArgs = "status --branch --porcelain=v2"
	branchArgs = "branch --format=%(refname:short)"
)

// fakeRunner returns scripted git output keyed by the space-joined args.
type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	calls   []string
}

func (f *fakeRunner) Git(_ context.Context, _ string, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)

	if out, ok := f.outputs[key]; ok {
		return []byte(out), nil
	}
	return nil, errors.New("fatal: unexpected git call: " + key)
}

func (f *fakeRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// testEnv is an app wired to fakes plus its captured output.
type testEnv struct {
	app       *app
	runner    *fakeRunner
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	clipboard []string
}

type testOptions struct {
	repo       bool
	gitMissing bool
	git        map[string]string
	stdin   string
	environ map[string]string
}

func newTestEnv(t *testing.T, opts testOptions) *testEnv {
	t.Helper()

	dir := t.TempDir()
	if opts.repo {
		if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
			t.Fatal(err)
		}
	}

	environ := opts.environ
	if environ == nil {
		environ = map[string]string{"USER": "alice", "HOSTNAME": "box"}
	}
	src := env.Source{
		Getwd:   func() (string, error) { return "/home/alice/src", nil },
		HomeDir: func() (string, error) { return "/home/alice", nil },
		Getenv:  func(key string) string { return environ[key] },
		Command: func(context.Context, string, ...string) ([]byte, error) {
			return nil, errors.New("no hostname command")
		},
	}

	clock := func() time.Time { return time.Date(2024, 5, 1, 9, 5, 7, 0, time.UTC) }
	runner := &fakeRunner{outputs: opts.git}
	checkGit := func() error {
		if opts.gitMissing {
			return git.ErrGitNotFound
		}
		return nil
	}

	te := &testEnv{
		runner: runner,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	te.app = &app{
		dir:         dir,
		store:       config.NewStore(filepath.Join(t.TempDir(), "loco-pilot", "config.toml"), clock),
		snapshot:    env.NewSnapshot(src, clock),
		prober:      git.NewProber(dir, runner, clock),
		runner:      runner,
		now:         clock,
		stdin:       strings.NewReader(opts.stdin),
		stdout:      te.stdout,
		stderr:      te.stderr,
		checkGit:    checkGit,
		interactive: func() bool { return false },
		selectTUI: func(string, []string) (uiprompt.SelectResult, error) {
			t.Error("interactive selector used unexpectedly")
			return uiprompt.SelectResult{Cancelled: true}, nil
		},
		clipboard: func(text string) error {
			te.clipboard = append(te.clipboard, text)
			return nil
		},
	}
	return te
}

// run executes the command tree with args.
func (te *testEnv) run(args ...string) error {
	root := newRootCmd(te.app)
	root.SetArgs(args)
	root.SetOut(te.stdout)
	root.SetErr(te.stderr)
	return root.ExecuteContext(context.Background())
}

// saveConfig persists cfg through a separate store so the app's cache stays cold.
func (te *testEnv) saveConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	if err := config.NewStore(te.app.store.Path(), nil).Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
}
