package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// FallbackJWTSecret is only for local development. Running with it is a
// deployment misconfiguration; main refuses to start in production with it.
const FallbackJWTSecret = "preplate-dev-secret-change-me"

type Config struct {
	Port      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	Env       string
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "preplate.db"),
		JWTSecret: getEnv("JWT_SECRET", FallbackJWTSecret),
		Env:       getEnv("APP_ENV", "development"),
	}
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

func (c *Config) UsingFallbackSecret() bool {
	return c.JWTSecret == FallbackJWTSecret
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
