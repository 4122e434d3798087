// Package config loads runtime configuration for the Zenora CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Environment: a .env file in the working directory is loaded first,
//     then ZENORA_* variables are applied (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the Zenora API
//	-d string   directory for the local database and device key
//	-t int      per-request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations accept strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "https://api.zenora.example",
//	  "data_dir": ".zenora",
//	  "request_timeout": "10s",
//	  "retry_delay": "500ms",
//	  "log_level": "info"
//	}
package config
