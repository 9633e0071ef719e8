// Package cache provides short-lived, in-process caching for values that are
// expensive to recompute on every prompt render.
//
// Shells invoke loco-pilot on every command, so the same facts (git status,
// hostname, working directory, configuration) are requested repeatedly within
// a short burst. Each fact kind has its own time-to-live:
//
//   - [GitStatusTTL]: 2 seconds
//   - [PathTTL]: 5 seconds (working directory, home directory, hostname)
//   - [ConfigTTL]: 60 seconds
//
// # Types
//
// [Entry] pairs a value with the instant it was captured. It carries no lock
// and is meant to be embedded in a larger record that is guarded as a unit.
//
// [Value] wraps a single Entry with its own mutex. [Value.GetOrLoad] runs the
// loader while holding the lock, so exactly one writer refreshes a slot and
// concurrent readers observe either the previous or the refreshed value.
//
// # Freshness
//
// An entry is fresh strictly while now - captured < ttl. A zero ttl disables
// caching.
package cache
