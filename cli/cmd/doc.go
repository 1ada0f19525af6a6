// Package cmd implements the shy CLI's eval, fmt, and cache subcommands:
// compiling and executing rules, disassembling compiled programs, and
// reporting ApproximateLRUCache occupancy.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
