// Package config handles loading and persisting loco-pilot configuration.
//
// Configuration is read from <UserConfigDir>/loco-pilot/config.toml. The
// LOCO_PILOT_CONFIG_DIR environment variable replaces the directory.
//
// # Settings
//
//   - style: default prompt style ("default", "minimal", "info", "emoji")
//   - show_git: whether the git segment is rendered
//   - [colors]: color names for username, hostname, directory, git_branch,
//     git_dirty and time
//
// A missing or unreadable file is never an error: [Store.Load] falls back to
// [Default]. Unknown keys in the file are ignored and missing keys keep their
// default values.
//
// # Updates
//
// [Store.Set] applies one key/value update and persists the result
// immediately. Keys use the names listed by [Keys], with colors addressed as
// "color.<field>".
package config
