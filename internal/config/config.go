package config

import (
	"fmt"
	"os"
	"time"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN is the key=value form accepted by the postgres driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type Config struct {
	Port                string
	Env                 string
	Database            DatabaseConfig
	RedisAddr           string
	KafkaBroker         string
	JWTSecret           string
	TokenTTL            time.Duration
	InsightsRefreshSpec string
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from the environment. Callers load .env first.
func Load() (Config, error) {
	cfg := Config{
		Port: getEnv("APP_PORT", "3000"),
		Env:  getEnv("APP_ENV", "development"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		KafkaBroker:         os.Getenv("KAFKA_BROKER"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		TokenTTL:            8 * time.Hour,
		InsightsRefreshSpec: getEnv("INSIGHTS_REFRESH_SPEC", "@every 5m"),
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	if cfg.Database.User == "" || cfg.Database.Name == "" {
		return Config{}, fmt.Errorf("DB_USER and DB_NAME are required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
