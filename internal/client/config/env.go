package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv loads .env (if present) and overlays ZENORA_* variables. Unset
// variables keep the current value. A malformed value panics.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
