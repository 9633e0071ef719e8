package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/raphi011/loco-pilot/internal/git"
	"github.com/raphi011/loco-pilot/internal/log"
	"github.com/raphi011/loco-pilot/internal/output"
	uiprompt "github.com/raphi011/loco-pilot/internal/ui/prompt"
)

const selectTitle = "Select a branch to copy:"

// branchOptions are the flags shared by the branch commands.
type branchOptions struct {
	clipboard bool
	tui       bool
}

func (o *branchOptions) register(cmd *cobra.Command, withTUI bool) {
	cmd.Flags().BoolVarP(&o.clipboard, "clipboard", "c", false, "Also copy the branch name to the system clipboard")
	if withTUI {
		cmd.Flags().BoolVar(&o.tui, "tui", false, "Use an interactive list instead of the numbered menu")
	}
}

func newBranchCopyCmd(a *app) *cobra.Command {
	var opts branchOptions

	cmd := &cobra.Command{
		Use:   "git-branch-copy",
		Short: "Print the current git branch name",
		Args:  cobra.NoArgs,
		Example: `  loco-pilot git-branch-copy      # Print the branch name
  loco-pilot git-branch-copy -c   # Also put it on the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBranchCopy(cmd.Context(), a, opts)
		},
	}
	opts.register(cmd, false)
	return cmd
}

func newBranchSelectCmd(a *app) *cobra.Command {
	var opts branchOptions

	cmd := &cobra.Command{
		Use:   "git-branch-select [filter]",
		Short: "Select a local git branch and print its name",
		Args:  cobra.MaximumNArgs(1),
		Long: `Select a local git branch and print its name.

An optional filter narrows the list with fuzzy matching before the menu is
shown.`,
		Example: `  loco-pilot git-branch-select          # Numbered menu of all branches
  loco-pilot git-branch-select feat     # Only branches matching "feat"
  loco-pilot git-branch-select --tui    # Interactive list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter string
			if len(args) == 1 {
				filter = args[0]
			}
			return runBranchSelect(cmd.Context(), a, filter, opts)
		},
	}
	opts.register(cmd, true)
	return cmd
}

func runBranchCopy(ctx context.Context, a *app, opts branchOptions) error {
	branch, ok := a.prober.CurrentBranch(ctx)
	if !ok {
		log.FromContext(ctx).Println("Not in a git repository or unable to determine current branch")
		return nil
	}

	copyBranch(ctx, a, branch, opts)
	output.FromContext(ctx).Printf("Git branch name: '%s'\n", branch)
	return nil
}

func runBranchSelect(ctx context.Context, a *app, filter string, opts branchOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if err := a.checkGit(); err != nil {
		l.Printf("Failed to get git branches: %v\n", err)
		return nil
	}

	branches, err := git.ListBranches(ctx, a.runner, a.dir)
	if err != nil {
		l.Printf("Failed to get git branches: %v\n", err)
		return nil
	}

	branches = uiprompt.FilterBranches(filter, branches)
	if len(branches) == 0 {
		l.Println("No git branches found")
		return nil
	}

	selected, ok := pickBranch(ctx, a, branches, opts)
	if !ok {
		l.Println("No branch selected")
		return nil
	}

	copyBranch(ctx, a, selected, opts)
	out.Printf("Selected git branch: '%s'\n", selected)
	return nil
}

// pickBranch asks the user for one of branches.
func pickBranch(ctx context.Context, a *app, branches []string, opts branchOptions) (string, bool) {
	l := log.FromContext(ctx)

	if opts.tui {
		if a.interactive() {
			res, err := a.selectTUI(selectTitle, branches)
			if err != nil {
				l.Printf("Selector failed: %v\n", err)
				return "", false
			}
			return res.Value, !res.Cancelled
		}
		l.Debug("stdin is not a terminal, using numbered menu")
	}

	selected, err := uiprompt.SelectNumbered(a.stdin, output.FromContext(ctx).Writer(), a.environ, branches)
	if err != nil {
		if errors.Is(err, uiprompt.ErrInvalidSelection) {
			l.Println("Invalid selection")
		}
		return "", false
	}
	return selected, true
}

// copyBranch prints the branch on its own line and optionally puts it on
// the clipboard. Clipboard failures are warnings.
func copyBranch(ctx context.Context, a *app, branch string, opts branchOptions) {
	output.FromContext(ctx).Copy(branch)
	if !opts.clipboard {
		return
	}
	if err := a.clipboard(branch); err != nil {
		log.FromContext(ctx).Printf("Warning: failed to copy to clipboard: %v\n", err)
	}
}
