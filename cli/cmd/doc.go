// Package cmd implements the aconst subcommands.
//
// Commands read manifests from the sources stored in their context by
// [WithSourceFiles] and print results to the writers of the [kong.Context]
// stored by [WithContext].
package cmd

// ConfigIdentifier is the kong variable identifier containing the path to
// the configuration file. It is also the name of the namespace holding flag
// values in that file.
const ConfigIdentifier = "config"

// CacheIdentifier is the kong variable identifier containing the path to
// the cache directory, where the repl keeps its history.
const CacheIdentifier = "cache"
