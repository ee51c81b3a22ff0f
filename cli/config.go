package cli

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

// Config holds the CLI environment configuration.
type Config struct {
	// Seed makes the output reproducible when set. Left unset, the
	// generator seeds itself from the clock.
	Seed *int64 `env:"NAMEMAKER_SEED"`
}

// LoadConfig parses the environment once and caches the result.
func LoadConfig() (Config, error) {
	var err error
	once.Do(func() {
		err = env.Parse(&cfg)
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
