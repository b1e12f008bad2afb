package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. Unset variables
// leave the current value untouched. A .env file in the working directory is
// loaded first when present; a missing file is not an error.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()

	setString(&cfg.EndpointAddr, "ADDRESS")
	setString(&cfg.DatabaseDSN, "DATABASE_DSN")
	setString(&cfg.AccessTokenSecret, "ACCESS_TOKEN_SECRET")
	setString(&cfg.RefreshTokenSecret, "REFRESH_TOKEN_SECRET")
	setString(&cfg.FieldCipherSecret, "FIELD_CIPHER_SECRET")
	setString(&cfg.SMTPHost, "SMTP_HOST")
	setString(&cfg.SMTPPort, "SMTP_PORT")
	setString(&cfg.SMTPUsername, "SMTP_USERNAME")
	setString(&cfg.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.FromName, "FROM_NAME")
	setString(&cfg.FromEmail, "FROM_EMAIL")
	setString(&cfg.PublicBaseURL, "PUBLIC_BASE_URL")

	if err := setDuration(&cfg.AccessTokenValidityDuration, "ACCESS_TOKEN_TTL"); err != nil {
		return err
	}
	if err := setDuration(&cfg.RefreshTokenValidityDuration, "REFRESH_TOKEN_TTL"); err != nil {
		return err
	}

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}
