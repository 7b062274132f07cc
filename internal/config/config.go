package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every tunable the bot reads from the environment.
type Config struct {
	Token                string
	Environment          string
	DataFile             string
	ExamplesFile         string
	SaveInterval         time.Duration
	HealthPort           int
	PollTimeout          time.Duration
	Debug                bool
	AvoidImmediateRepeat bool
}

// Load reads configuration from environment variables with documented defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("DATA_FILE", "user_data.json")
	v.SetDefault("EXAMPLES_FILE", "examples.txt")
	v.SetDefault("SAVE_INTERVAL", "300s")
	v.SetDefault("HEALTH_PORT", 8080)
	v.SetDefault("POLL_TIMEOUT", "60s")
	v.SetDefault("DEBUG", false)
	v.SetDefault("AVOID_IMMEDIATE_REPEAT", false)

	token := v.GetString("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is required")
	}
	if !ValidTokenFormat(token) {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN does not look like a bot token (expected <digits>:<secret>)")
	}

	cfg := &Config{
		Token:                token,
		Environment:          v.GetString("ENVIRONMENT"),
		DataFile:             v.GetString("DATA_FILE"),
		ExamplesFile:         v.GetString("EXAMPLES_FILE"),
		SaveInterval:         v.GetDuration("SAVE_INTERVAL"),
		HealthPort:           v.GetInt("HEALTH_PORT"),
		PollTimeout:          v.GetDuration("POLL_TIMEOUT"),
		Debug:                v.GetBool("DEBUG"),
		AvoidImmediateRepeat: v.GetBool("AVOID_IMMEDIATE_REPEAT"),
	}

	if cfg.SaveInterval <= 0 {
		cfg.SaveInterval = 300 * time.Second
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 60 * time.Second
	}

	return cfg, nil
}

// ValidTokenFormat checks that a token looks like a real bot token:
// a numeric bot id, a colon, and a secret of reasonable length.
func ValidTokenFormat(token string) bool {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return false
	}
	if len(parts[0]) < 5 {
		return false
	}
	for _, r := range parts[0] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(parts[1]) >= 20
}
