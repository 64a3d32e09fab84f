// Package cmd implements the sub-commands of the hmapgen command-line
// interface (generate, layout, keys). The plumbing shared between commands,
// such as schema loading, is located in shared.go.
package cmd
