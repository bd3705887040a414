// Package config loads runtime configuration for the shopkeeper client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading a dotenv file (-env path, or
//     ./.env when present).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// # Environment
//
//	SHOP_API_URL          base URL of the REST API
//	SHOP_DB_PATH          path of the local session database
//	SHOP_REQUEST_TIMEOUT  per-request timeout, e.g. "10s"
//	SHOP_LOG_LEVEL        debug | info | warn | error
//	SHOP_DEFAULT_AVATAR   avatar used when creating users without one
//
// # Flags
//
//	-a string   API base URL
//	-d string   session database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Intervals use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "https://api.escuelajs.co/api/v1",
//	  "database_path": "session.db",
//	  "request_timeout": "10s",
//	  "log_level": "debug",
//	  "default_avatar": "https://example.com/a.png"
//	}
//
// Invalid values in any source panic; the process cannot start misconfigured.
package config
