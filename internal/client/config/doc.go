// Package config loads runtime configuration for the studentboard terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the dashboard server
//	-u string   login name (prompted for when empty)
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "username": "admin",
//	  "request_timeout": "10s"
//	}
//
// The password is never read from configuration; the client always prompts.
package config
