// Package config loads runtime configuration for the TaskKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local database file
//	-t string   default theme (light or dark)
//	-e int      error display duration (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for durations, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "database_dsn": "taskkeeper.db",
//	  "default_theme": "dark",
//	  "error_display_duration": "3s"
//	}
package config
