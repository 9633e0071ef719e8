// Package git provides the git queries behind the prompt's git segment and
// the branch utilities.
//
// Status and branch queries shell out to the git CLI so the user's own git
// configuration applies. Only commit hash resolution falls back to reading
// the repository with go-git when the CLI fails.
//
// # Status Probing
//
// [Prober.Probe] answers "which branch, dirty or clean, how far from
// upstream" with a single `git status --branch --porcelain=v2` call, plus one
// `git rev-parse --short HEAD` when HEAD is detached. Results are cached for
// [cache.GitStatusTTL]; within that window no subprocess is spawned.
//
// Repository membership is a plain check for a .git entry in the probed
// directory. Parent directories are not searched.
//
// # Branch Operations
//
//   - [ListBranches]: local branch names
//   - [ShortCommit]: abbreviated HEAD hash (CLI, then go-git)
//   - [CheckGit]: verify git is in PATH
package git
