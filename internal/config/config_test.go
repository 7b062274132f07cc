package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "1234567890:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", testToken)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testToken, cfg.Token)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "user_data.json", cfg.DataFile)
	assert.Equal(t, "examples.txt", cfg.ExamplesFile)
	assert.Equal(t, 300*time.Second, cfg.SaveInterval)
	assert.Equal(t, 8080, cfg.HealthPort)
	assert.Equal(t, 60*time.Second, cfg.PollTimeout)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.AvoidImmediateRepeat)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", testToken)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SAVE_INTERVAL", "30s")
	t.Setenv("HEALTH_PORT", "9090")
	t.Setenv("AVOID_IMMEDIATE_REPEAT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 30*time.Second, cfg.SaveInterval)
	assert.Equal(t, 9090, cfg.HealthPort)
	assert.True(t, cfg.AvoidImmediateRepeat)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMalformedToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "not-a-token")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidTokenFormat(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"valid token", testToken, true},
		{"no colon", "1234567890ABCDEF", false},
		{"non-numeric id", "abcde:" + strings.Repeat("A", 25), false},
		{"short id", "123:" + strings.Repeat("A", 25), false},
		{"short secret", "1234567890:short", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTokenFormat(tt.token))
		})
	}
}
