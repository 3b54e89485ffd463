// Package hostconfig loads process configuration for cmd/coupd. The engine
// package takes no environment or CLI input — this package exists entirely
// outside that boundary.
package hostconfig

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full set of process-level settings coupd reads at startup,
// struct-tag driven.
type Config struct {
	ListenAddr string `env:"COUPD_LISTEN_ADDR" envDefault:":8089"`
	LogLevel   string `env:"COUPD_LOG_LEVEL" envDefault:"info"`

	DatabaseURL string `env:"COUPD_DATABASE_URL"`
	RedisAddr   string `env:"COUPD_REDIS_ADDR" envDefault:"localhost:6379"`

	JWTSecret  string        `env:"COUPD_JWT_SECRET,required"`
	TokenTTL   time.Duration `env:"COUPD_TOKEN_TTL" envDefault:"30m"`
	TurnTimeout time.Duration `env:"COUPD_TURN_TIMEOUT" envDefault:"45s"`
}

// Load reads an optional .env file and then parses the process environment
// into Config.
func Load(envFilePath string) (Config, error) {
	if envFilePath != "" {
		// A missing .env file in production is normal; only a malformed one
		// is worth surfacing.
		if err := godotenv.Load(envFilePath); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("hostconfig: loading %s: %w", envFilePath, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("hostconfig: parsing environment: %w", err)
	}
	return cfg, nil
}
