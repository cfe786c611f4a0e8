package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the Config fields that may be set through environment
// variables. Unset variables leave the current values untouched.
type envConfig struct {
	EndpointAddr          string        `env:"ADDRESS"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecretKey             string        `env:"SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"TOKEN_VALIDITY"`
	RedisAddr             string        `env:"REDIS_ADDR"`
}

// parseEnv overlays environment variables onto config. Only variables that
// are actually present override the previous layer.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration
	}
	if c.RedisAddr != "" {
		config.RedisAddr = c.RedisAddr
	}
}
