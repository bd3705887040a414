package config

import "time"

// DefaultAPIBaseURL is the public store API the client talks to.
const DefaultAPIBaseURL = "https://api.escuelajs.co/api/v1"

// Config holds runtime settings for the shopkeeper client.
//
// Fields:
//   - APIBaseURL: base URL of the remote REST API, without trailing slash.
//   - DatabasePath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request timeout for API calls.
//   - LogLevel: debug, info, warn or error.
//   - DefaultAvatar: avatar sent when a new user is created without one.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
	DefaultAvatar  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.DatabasePath = "session.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
	c.DefaultAvatar = "random.com"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
