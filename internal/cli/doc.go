// Package cli defines the Cobra command tree for the crxgen CLI. Each file
// in this package registers one top-level command with the root command.
// Command implementations delegate to internal packages for the scaffolding
// logic and only handle flag parsing, I/O formatting, and user interaction.
package cli
