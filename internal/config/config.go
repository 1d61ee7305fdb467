package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN" required:"true"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET" required:"true"`
	SunnahAPIKey       string `envconfig:"SUNNAH_API_KEY"`
	DatabasePath       string `envconfig:"DATABASE_PATH" default:"./dailypost.db"`
	Port               string `envconfig:"PORT" default:"3000"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
