// Package cli defines the Cobra command tree for the wally CLI. Each file
// in this package registers one top-level command (add, generate, list, etc.)
// with the root command. Command implementations delegate to internal packages
// for business logic and only handle flag parsing, output formatting, and
// exit status.
package cli
