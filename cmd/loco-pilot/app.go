package main

import (
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"github.com/raphi011/loco-pilot/internal/cache"
	"github.com/raphi011/loco-pilot/internal/config"
	"github.com/raphi011/loco-pilot/internal/env"
	"github.com/raphi011/loco-pilot/internal/git"
	uiprompt "github.com/raphi011/loco-pilot/internal/ui/prompt"
)

// app holds the per-process caches and I/O shared by all commands.
type app struct {
	dir      string // working directory at startup
	store    *config.Store
	snapshot *env.Snapshot
	prober   *git.Prober
	runner   git.Runner
	now      cache.Clock

	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	environ []string // decides menu colors

	checkGit    func() error
	interactive func() bool
	selectTUI   func(title string, options []string) (uiprompt.SelectResult, error)
	clipboard   func(text string) error
}

// newApp wires the real OS-backed dependencies.
func newApp(stdin *os.File, stdout, stderr io.Writer) *app {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}

	// an unresolvable path leaves Load on defaults and makes Save fail
	path, _ := config.DefaultPath()

	runner := git.ExecRunner{}
	return &app{
		dir:         dir,
		store:       config.NewStore(path, time.Now),
		snapshot:    env.NewSnapshot(env.OSSource(), time.Now),
		prober:      git.NewProber(dir, runner, time.Now),
		runner:      runner,
		now:         time.Now,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		environ:     os.Environ(),
		checkGit:    git.CheckGit,
		interactive: func() bool { return uiprompt.IsTerminal(stdin) },
		selectTUI:   uiprompt.Select,
		clipboard:   clipboard.WriteAll,
	}
}
