// Package cli defines the Cobra command tree for the sharext CLI. Each file
// registers one top-level command with the root command. Commands resolve the
// project root and settings, then delegate to internal packages.
package cli
