package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/suarezvoley/checkin/internal/codes"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	getEnvDefault := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	maxAttempts := codes.DefaultMaxAttempts
	if raw := os.Getenv("CODE_MAX_ATTEMPTS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			log.Warn("Invalid CODE_MAX_ATTEMPTS, using default", "value", raw, "default", maxAttempts)
		} else {
			maxAttempts = parsed
		}
	}

	return Config{
		DBName:          getEnv("DB_NAME"),
		Port:            getEnvDefault("PORT", "8000"),
		ReportPath:      getEnvDefault("REPORT_PATH", "attendance_report.xlsx"),
		CodeMaxAttempts: maxAttempts,
		Slack: SlackConfig{
			Token:     getEnvDefault("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvDefault("SLACK_CHANNEL_ID", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
	}
}
