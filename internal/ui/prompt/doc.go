// Package prompt provides the interactive branch pickers.
//
// Available prompts:
//   - [SelectNumbered]: numbered menu read from a line of input
//   - [Select]: bubbletea list selection on stderr
//   - [FilterBranches]: fuzzy narrowing before either prompt
//
// [IsTerminal] decides whether [Select] can run at all.
package prompt
