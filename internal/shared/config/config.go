package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	DefaultGeminiModel       = "gemini-1.5-flash"
	DefaultGeminiBaseURL     = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultHistoryLimit      = 100
	DefaultRequestsPerSecond = 1.0
	DefaultTelegramAPIURL    = "https://api.telegram.org"
)

type Config struct {
	SlackBotToken       string      `koanf:"slack_bot_token"`
	SlackAPIURL         string      `koanf:"slack_api_url"`
	GeminiAPIKey        string      `koanf:"gemini_api_key"`
	GeminiModel         string      `koanf:"gemini_model"`
	GeminiBaseURL       string      `koanf:"gemini_base_url"`
	OriginalChannelID   string      `koanf:"original_channel_id"`
	TranslatedChannelID string      `koanf:"translated_channel_id"`
	HistoryLimit        int         `koanf:"history_limit"`
	RequestsPerSecond   float64     `koanf:"requests_per_second"`
	Destination         Destination `koanf:"destination"`
	TelegramBotToken    string      `koanf:"telegram_bot_token"`
	TelegramChatID      string      `koanf:"telegram_chat_id"`
	TelegramAPIURL      string      `koanf:"telegram_api_url"`
	AppEnv              AppEnv      `koanf:"app_env"`
	LogLevel            string      `koanf:"log_level"`
}

// Load reads configuration from an optional .env file, an optional config file
// and the process environment, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, oops.With("context", "loading .env file").Wrap(err)
	}

	k := koanf.New(".")

	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	defaults := map[string]any{
		"gemini_model":        DefaultGeminiModel,
		"gemini_base_url":     DefaultGeminiBaseURL,
		"history_limit":       DefaultHistoryLimit,
		"requests_per_second": DefaultRequestsPerSecond,
		"destination":         string(DestinationSlack),
		"telegram_api_url":    DefaultTelegramAPIURL,
		"app_env":             string(AppEnvProduction),
		"log_level":           "info",
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	appEnv, err := ParseAppEnv(k.String("app_env"))
	if err != nil {
		appEnv = AppEnvProduction
	}
	cfg.AppEnv = appEnv

	destination, err := ParseDestination(k.String("destination"))
	if err != nil {
		return nil, oops.With("destination", k.String("destination")).Wrap(err)
	}
	cfg.Destination = destination

	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	switch {
	case c.SlackBotToken == "":
		return errors.ErrMissingSlackToken
	case c.GeminiAPIKey == "":
		return errors.ErrMissingGeminiKey
	case c.OriginalChannelID == "":
		return errors.ErrMissingSourceChannel
	}

	switch c.Destination {
	case DestinationTelegram:
		if c.TelegramBotToken == "" || c.TelegramChatID == "" {
			return errors.ErrMissingTelegramConfig
		}
	default:
		if c.TranslatedChannelID == "" {
			return errors.ErrMissingDestinationChannel
		}
	}

	return nil
}
