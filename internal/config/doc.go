// Package config provides configuration loading, merging, and validation
// facilities for the deck builder server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON, TOML or YAML config file
//
// The main entry point is [GetStructuredConfig]. Flags are bound to a
// pflag.FlagSet with [RegisterFlags] so the CLI can share them between
// subcommands.
package config
