package main

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/loco-pilot/internal/env"
	"github.com/raphi011/loco-pilot/internal/git"
	"github.com/raphi011/loco-pilot/internal/output"
	"github.com/raphi011/loco-pilot/internal/prompt"
)

// runPrompt prints the prompt for style without a trailing newline.
func runPrompt(ctx context.Context, a *app, style prompt.Style) error {
	cfg := a.store.Load(ctx)
	out := output.FromContext(ctx)

	if style == prompt.StyleMinimal {
		out.Print(prompt.Render(style, cfg, prompt.Facts{}, nil))
		return nil
	}

	facts := prompt.Facts{
		Username: a.snapshot.Username(),
		Time:     prompt.FormatTime(a.now()),
	}
	var status *git.Status

	// each goroutine writes its own field; the caches lock independently
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		facts.Hostname = a.snapshot.Hostname(gctx)
		return nil
	})
	g.Go(func() error {
		facts.Directory = env.Shortened(a.snapshot.Directory())
		return nil
	})
	if prompt.NeedsGit(style, cfg) {
		g.Go(func() error {
			status = a.prober.Probe(gctx)
			return nil
		})
	}
	_ = g.Wait()

	out.Print(prompt.Render(style, cfg, facts, status))
	return nil
}
