// Package cli wires together the Cobra command tree for the critique binary.
//
// It defines the root command and all subcommands (review, serve, config,
// cache, languages, models, version), binds flags, reads configuration,
// invokes the review engine, and returns deterministic exit codes for CI
// gating.
package cli
