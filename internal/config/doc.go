// Package config loads runtime configuration for the BirthdayBook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   path of the local SQLite database file
//	-s string   secret key used to sign session tokens
//	-t int      session validity (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the session validity, so values
// can be either strings like "24h" or integer nanoseconds:
//
//	{
//	  "database_dsn": "birthdaybook.db",
//	  "secret_key": "change-me",
//	  "session_validity_duration": "24h"
//	}
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
