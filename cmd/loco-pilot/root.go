package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/loco-pilot/internal/log"
	"github.com/raphi011/loco-pilot/internal/output"
	"github.com/raphi011/loco-pilot/internal/prompt"
)

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	var (
		verbose bool
		quiet   bool
		style   string
		gbc     bool
		gbs     bool
		opts    branchOptions
	)

	root := &cobra.Command{
		Use:   "loco-pilot",
		Short: "Fast, configurable bash prompt with git status",
		Long: `loco-pilot prints a bash prompt with user, host, directory and git status.

Use it from PROMPT_COMMAND:

  PROMPT_COMMAND='PS1="$(loco-pilot)"'

Git status is cached for 2 seconds, directory and hostname for 5 seconds and
the configuration for 60 seconds.`,
		Example: `  loco-pilot                  # Prompt in the configured style
  loco-pilot -s minimal       # Just "$ "
  loco-pilot --gbc            # Print the current branch name
  loco-pilot --gbs            # Pick a local branch from a menu`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithLogger(cmd.Context(), log.New(a.stderr, verbose, quiet))
			ctx = output.WithPrinter(ctx, a.stdout)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch {
			case gbc:
				return runBranchCopy(ctx, a, opts)
			case gbs:
				return runBranchSelect(ctx, a, "", opts)
			}

			if !cmd.Flags().Changed("style") {
				style = a.store.Load(ctx).Style
			}
			return runPrompt(ctx, a, prompt.ParseStyle(style))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.Flags().StringVarP(&style, "style", "s", prompt.StyleDefault.String(), "Prompt style (default, minimal, info, emoji)")
	root.Flags().BoolVar(&gbc, "gbc", false, "Print the current git branch name")
	root.Flags().BoolVar(&gbs, "gbs", false, "Select a local git branch from a menu")
	root.MarkFlagsMutuallyExclusive("gbc", "gbs")
	opts.register(root, true)

	root.RegisterFlagCompletionFunc("style", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return prompt.Styles(), cobra.ShellCompDirectiveNoFileComp
	})

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd(a))
	root.AddCommand(newBranchCopyCmd(a))
	root.AddCommand(newBranchSelectCmd(a))

	return root
}

// Execute runs the command tree against the real process environment.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(newApp(os.Stdin, os.Stdout, os.Stderr))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'loco-pilot -h' for help")
		cancel()
		os.Exit(1)
	}
}
