package config

// Config holds all configuration for the application.
type Config struct {
	DBName          string
	Port            string
	ReportPath      string
	CodeMaxAttempts int
	Slack           SlackConfig
	Turso           TursoConfig
}

// SlackConfig configures the optional check-in notifier. Notifications
// are disabled when Token is empty.
type SlackConfig struct {
	Token     string
	ChannelID string
}

// TursoConfig configures the optional remote libsql primary. The store
// stays a plain local SQLite file when PrimaryURL is empty.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
