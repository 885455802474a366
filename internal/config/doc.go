// Package config provides configuration loading, merging, and validation
// facilities for the PDF desk client and the contract stub server.
//
// Configuration is assembled from multiple sources; a later source overrides
// the non-zero fields of an earlier one:
//  1. Config file (JSON or TOML, chosen by extension)
//  2. Environment variables (optionally seeded from a .env file)
//  3. Command-line flags
//
// Fields left empty by every source receive role-specific defaults in
// [GetClientConfig] and [GetServerConfig].
package config
