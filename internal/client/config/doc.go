// Package config loads runtime configuration for the PeerSphere CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (-e/-env, or ./.env when present) overlaid by the
//     process environment, PEERSPHERE_* variables only.
//  3. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the PeerSphere REST API
//	-d string   path of the local SQLite database
//	-s string   session scope: "tab" (process lifetime) or "persistent"
//	-l string   log level: debug, info, warn, error
//	-m int      number of messages fetched per group
//
// # File schema
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "db_path": "peersphere.db",
//	  "session_scope": "tab",
//	  "log_level": "info",
//	  "message_limit": 50
//	}
//
// Environment variables use the same names upper-cased with a PEERSPHERE_
// prefix, e.g. PEERSPHERE_API_BASE_URL.
package config
