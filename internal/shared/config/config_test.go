package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reshetovitsme/slack-translate-relay/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("ORIGINAL_CHANNEL_ID", "C0RIGINAL")
	t.Setenv("TRANSLATED_CHANNEL_ID", "C0TRANSLATED")
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "xoxb-test", cfg.SlackBotToken)
	assert.Equal(t, "gemini-key", cfg.GeminiAPIKey)
	assert.Equal(t, "C0RIGINAL", cfg.OriginalChannelID)
	assert.Equal(t, "C0TRANSLATED", cfg.TranslatedChannelID)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, DefaultGeminiBaseURL, cfg.GeminiBaseURL)
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
	assert.InDelta(t, DefaultRequestsPerSecond, cfg.RequestsPerSecond, 0.0001)
	assert.Equal(t, DefaultTelegramAPIURL, cfg.TelegramAPIURL)
	assert.Equal(t, DestinationSlack, cfg.Destination)
	assert.Equal(t, AppEnvProduction, cfg.AppEnv)
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	setRequiredEnv(t)
	t.Setenv("HISTORY_LIMIT", "25")

	content := "gemini_model: gemini-2.0-flash\nhistory_limit: 50\napp_env: local\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 25, cfg.HistoryLimit)
	assert.Equal(t, AppEnvLocal, cfg.AppEnv)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	setRequiredEnv(t)

	// godotenv never overrides variables that are already set
	t.Setenv("GEMINI_MODEL", "")
	os.Unsetenv("GEMINI_MODEL")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_MODEL=gemini-from-dotenv\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-from-dotenv", cfg.GeminiModel)
}

func TestLoad_InvalidDestination(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)
	t.Setenv("DESTINATION", "carrier-pigeon")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidDestination)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			SlackBotToken:       "xoxb",
			GeminiAPIKey:        "key",
			OriginalChannelID:   "C1",
			TranslatedChannelID: "C2",
			Destination:         DestinationSlack,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing slack token", mutate: func(c *Config) { c.SlackBotToken = "" }, wantErr: errors.ErrMissingSlackToken},
		{name: "missing gemini key", mutate: func(c *Config) { c.GeminiAPIKey = "" }, wantErr: errors.ErrMissingGeminiKey},
		{name: "missing source channel", mutate: func(c *Config) { c.OriginalChannelID = "" }, wantErr: errors.ErrMissingSourceChannel},
		{name: "missing destination channel", mutate: func(c *Config) { c.TranslatedChannelID = "" }, wantErr: errors.ErrMissingDestinationChannel},
		{
			name: "telegram without chat",
			mutate: func(c *Config) {
				c.Destination = DestinationTelegram
				c.TelegramBotToken = "123:abc"
			},
			wantErr: errors.ErrMissingTelegramConfig,
		},
		{
			name: "telegram does not need a slack destination",
			mutate: func(c *Config) {
				c.Destination = DestinationTelegram
				c.TranslatedChannelID = ""
				c.TelegramBotToken = "123:abc"
				c.TelegramChatID = "-100200300"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseDestination_CaseInsensitive(t *testing.T) {
	d, err := ParseDestination("Telegram")
	require.NoError(t, err)
	assert.Equal(t, DestinationTelegram, d)
}
