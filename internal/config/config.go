package config

import (
	"fmt"
	"os"
)

// Config is the application-wide configuration.
type Config struct {
	Port string

	// Either DATABASE_URL or the discrete POSTGRES_* vars (see infra/db).
	DatabaseURL string

	JWTSecret string // access token signing secret
	OTPSecret string // delivery OTP HMAC secret

	// SMTP settings; when SMTPAddr is empty the logging notifier is used.
	SMTPAddr string
	SMTPFrom string

	GoEnv string // dev/prod
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		OTPSecret:   os.Getenv("OTP_SECRET"),
		SMTPAddr:    os.Getenv("SMTP_ADDR"),
		SMTPFrom:    getenv("SMTP_FROM", "orders@campus-meals.lk"),
		GoEnv:       getenv("GO_ENV", "development"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.OTPSecret == "" {
		return Config{}, fmt.Errorf("OTP_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
