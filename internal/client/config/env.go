package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envAPIURL         = "SHOP_API_URL"
	envDatabasePath   = "SHOP_DB_PATH"
	envRequestTimeout = "SHOP_REQUEST_TIMEOUT"
	envLogLevel       = "SHOP_LOG_LEVEL"
	envDefaultAvatar  = "SHOP_DEFAULT_AVATAR"
)

// loadDotEnv loads the dotenv file named by -env, or ./.env if it exists.
// Variables already present in the environment are not overridden.
func loadDotEnv() {
	if path := flagx.EnvFileFlag(os.Args[1:]); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

// parseEnv overlays Config with SHOP_* environment variables.
func parseEnv(cfg *Config) {
	loadDotEnv()

	if v := os.Getenv(envAPIURL); v != "" {
		cfg.APIBaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envDefaultAvatar); v != "" {
		cfg.DefaultAvatar = v
	}
}
