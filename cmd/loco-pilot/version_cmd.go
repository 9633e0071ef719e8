package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/loco-pilot/internal/git"
	"github.com/raphi011/loco-pilot/internal/output"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			output.FromContext(ctx).Println(versionLine(ctx, a, version, commit))
			return nil
		},
	}
}

// versionLine formats the version command output. A build without an
// embedded commit reports the HEAD of the working directory instead.
func versionLine(ctx context.Context, a *app, version, commit string) string {
	sha := commit
	if sha == "" || sha == "none" {
		sha, _ = git.ShortCommit(ctx, a.runner, a.dir)
	}
	sha = sha[:min(7, len(sha))]

	if sha == "" {
		return "Version: " + version
	}
	return "Version: " + version + " (" + sha + ")"
}
