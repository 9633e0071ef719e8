package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/raphi011/loco-pilot/internal/cache"
)

// UnknownBranch is reported when the status output has no branch header.
const UnknownBranch = "unknown"

// DetachedPrefix prefixes the short hash of a detached HEAD.
const DetachedPrefix = "detached@"

// Status is the git state shown in the prompt.
type Status struct {
	Branch string
	Dirty  bool
	Ahead  int
	Behind int
}

// isDetachedPlaceholder matches the branch.head values git uses for a
// detached HEAD.
func isDetachedPlaceholder(branch string) bool {
	return branch == "(detached)" || branch == "HEAD"
}

var statusArgs = []string{"status", "--branch", "--porcelain=v2"}

// Prober resolves and caches the git status of one directory.
type Prober struct {
	dir    string
	runner Runner
	cache  *cache.Value[Status]
	// headHash resolves HEAD without the CLI; nil disables the fallback.
	headHash func(dir string) (string, error)
}

// NewProber creates a prober for dir. A nil clock means time.Now.
func NewProber(dir string, runner Runner, now cache.Clock) *Prober {
	return &Prober{
		dir:      dir,
		runner:   runner,
		cache:    cache.New[Status](cache.GitStatusTTL, now),
		headHash: openHeadHash,
	}
}

// Probe returns the current status, or nil when dir is not a repository or
// git fails. A cached status younger than [cache.GitStatusTTL] is returned
// without running git.
func (p *Prober) Probe(ctx context.Context) *Status {
	st, ok := p.cache.GetOrLoad(func() (Status, bool) {
		return p.load(ctx)
	})
	if !ok {
		return nil
	}
	return &st
}

// CurrentBranch returns the probed branch name.
func (p *Prober) CurrentBranch(ctx context.Context) (string, bool) {
	st := p.Probe(ctx)
	if st == nil {
		return "", false
	}
	return st.Branch, true
}

func (p *Prober) load(ctx context.Context) (Status, bool) {
	if !IsRepo(p.dir) {
		return Status{}, false
	}

	out, err := p.runner.Git(ctx, p.dir, statusArgs...)
	if err != nil {
		return Status{}, false
	}

	st := ParseStatus(out)
	if isDetachedPlaceholder(st.Branch) {
		if hash, err := shortCommit(ctx, p.runner, p.dir, p.headHash); err == nil {
			st.Branch = DetachedPrefix + hash
		}
	}
	return st, true
}

// ParseStatus parses `git status --branch --porcelain=v2` output.
//
// The branch comes from the branch.head header, ahead/behind from
// branch.ab. Every other non-header line marks the tree dirty. Lines that
// can't be parsed are skipped.
func ParseStatus(out []byte) Status {
	st := Status{Branch: UnknownBranch}

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")

		switch {
		case strings.HasPrefix(line, "# branch.head "):
			if name := strings.TrimSpace(strings.TrimPrefix(line, "# branch.head ")); name != "" {
				st.Branch = name
			}
		case strings.HasPrefix(line, "# branch.ab "):
			if ahead, behind, ok := parseAheadBehind(strings.TrimPrefix(line, "# branch.ab ")); ok {
				st.Ahead, st.Behind = ahead, behind
			}
		case strings.HasPrefix(line, "#"):
			// other headers: branch.oid, branch.upstream, stash
		case len(line) > 1 && !strings.HasPrefix(line, " "):
			st.Dirty = true
		}
	}

	return st
}

// parseAheadBehind parses "+<ahead> -<behind>". Fields are matched by sign,
// not position.
func parseAheadBehind(s string) (ahead, behind int, ok bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, false
	}

	var gotAhead, gotBehind bool
	for _, f := range fields {
		if len(f) < 2 {
			return 0, 0, false
		}
		n, err := strconv.Atoi(f[1:])
		if err != nil || n < 0 {
			return 0, 0, false
		}
		switch f[0] {
		case '+':
			ahead, gotAhead = n, true
		case '-':
			behind, gotBehind = n, true
		default:
			return 0, 0, false
		}
	}

	if !gotAhead || !gotBehind {
		return 0, 0, false
	}
	return ahead, behind, true
}
