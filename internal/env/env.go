// Package env gathers the environment facts shown in the prompt: working
// directory, home directory, hostname and username.
//
// Directory, home and hostname share one composite record guarded by a single
// mutex; each field has its own capture time and expires after
// [cache.PathTTL]. The username is resolved once per process.
package env

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/raphi011/loco-pilot/internal/cache"
	"github.com/raphi011/loco-pilot/internal/cmd"
)

// FallbackHostname is used when no hostname source succeeds.
const FallbackHostname = "localhost"

// FallbackUsername is used when $USER is not set.
const FallbackUsername = "user"

// ShortenThreshold is the longest directory string shown unabbreviated.
const ShortenThreshold = 15

// Source abstracts the OS lookups so tests can run without touching the
// real process environment.
type Source struct {
	Getwd   func() (string, error)
	HomeDir func() (string, error)
	Getenv  func(key string) string
	// Command runs an external command and returns its stdout.
	Command func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// OSSource returns a Source backed by the real operating system.
func OSSource() Source {
	return Source{
		Getwd:   os.Getwd,
		HomeDir: os.UserHomeDir,
		Getenv:  os.Getenv,
		Command: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return cmd.OutputContext(ctx, "", name, args...)
		},
	}
}

// Snapshot caches environment facts for a short prompt-rendering burst.
type Snapshot struct {
	src Source
	now cache.Clock
	ttl time.Duration

	mu   sync.Mutex
	dir  cache.Entry[string]
	home cache.Entry[string]
	host cache.Entry[string]

	user *cache.Value[string]
}

// NewSnapshot creates an empty snapshot. A nil clock means time.Now.
func NewSnapshot(src Source, now cache.Clock) *Snapshot {
	if now == nil {
		now = time.Now
	}
	return &Snapshot{
		src:  src,
		now:  now,
		ttl:  cache.PathTTL,
		user: cache.New[string](time.Duration(math.MaxInt64), now),
	}
}

// Directory returns the working directory with a leading home directory
// replaced by "~". An unresolvable working directory yields "".
func (s *Snapshot) Directory() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.dir.Fresh(now, s.ttl) {
		return s.dir.Value
	}

	wd, err := s.src.Getwd()
	if err != nil {
		wd = ""
	}

	dir := substituteHome(wd, s.homeLocked(now))
	s.dir = cache.NewEntry(dir, now)
	return dir
}

// Home returns the user's home directory, or "" when it can't be resolved.
func (s *Snapshot) Home() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.homeLocked(s.now())
}

// homeLocked must be called with s.mu held. Failed lookups are not cached.
func (s *Snapshot) homeLocked(now time.Time) string {
	if s.home.Fresh(now, s.ttl) {
		return s.home.Value
	}
	home, err := s.src.HomeDir()
	if err != nil || home == "" {
		return ""
	}
	s.home = cache.NewEntry(home, now)
	return home
}

// Hostname resolves the hostname from $HOSTNAME, then $HOST, then the
// hostname command, falling back to [FallbackHostname].
func (s *Snapshot) Hostname(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.host.Fresh(now, s.ttl) {
		return s.host.Value
	}

	host := s.lookupHostname(ctx)
	s.host = cache.NewEntry(host, now)
	return host
}

func (s *Snapshot) lookupHostname(ctx context.Context) string {
	for _, key := range []string{"HOSTNAME", "HOST"} {
		if v := s.src.Getenv(key); v != "" {
			return v
		}
	}
	if s.src.Command != nil {
		out, err := s.src.Command(ctx, "hostname")
		if err == nil {
			if host := strings.TrimSpace(string(out)); host != "" {
				return host
			}
		}
	}
	return FallbackHostname
}

// Username returns $USER, or [FallbackUsername] when unset.
func (s *Snapshot) Username() string {
	name, _ := s.user.GetOrLoad(func() (string, bool) {
		if u := s.src.Getenv("USER"); u != "" {
			return u, true
		}
		return FallbackUsername, true
	})
	return name
}

// substituteHome replaces a leading home directory with "~". The match must
// end at a path boundary, so /home/al is not abbreviated inside /home/alice.
func substituteHome(path, home string) string {
	if home == "" || !strings.HasPrefix(path, home) {
		return path
	}
	rest := path[len(home):]
	if rest != "" && !strings.HasPrefix(rest, string(filepath.Separator)) {
		return path
	}
	return "~" + rest
}

// Shortened abbreviates long paths to "first/.../parent/last".
// Paths of at most [ShortenThreshold] bytes, or with at most three
// "/"-separated segments, are returned unchanged.
func Shortened(path string) string {
	if len(path) <= ShortenThreshold {
		return path
	}

	parts := strings.Split(path, "/")
	if len(parts) <= 3 {
		return path
	}

	n := len(parts)
	return parts[0] + "/.../" + parts[n-2] + "/" + parts[n-1]
}
