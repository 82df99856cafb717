package di

import (
	"time"

	"github.com/go-telegram/bot"
	messageRepo "github.com/reshetovitsme/slack-translate-relay/internal/modules/message/repository"
	messageService "github.com/reshetovitsme/slack-translate-relay/internal/modules/message/service"
	publishRepo "github.com/reshetovitsme/slack-translate-relay/internal/modules/publish/repository"
	publishService "github.com/reshetovitsme/slack-translate-relay/internal/modules/publish/service"
	relayService "github.com/reshetovitsme/slack-translate-relay/internal/modules/relay/service"
	translationRepo "github.com/reshetovitsme/slack-translate-relay/internal/modules/translation/repository"
	translationService "github.com/reshetovitsme/slack-translate-relay/internal/modules/translation/service"
	windowService "github.com/reshetovitsme/slack-translate-relay/internal/modules/window/service"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/config"
	"github.com/reshetovitsme/slack-translate-relay/internal/transport/gemini"
	slackTransport "github.com/reshetovitsme/slack-translate-relay/internal/transport/slack"
	"github.com/reshetovitsme/slack-translate-relay/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container around cfg
func Setup(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	// Register Slack client
	do.Provide(injector, func(i do.Injector) (*slackTransport.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return slackTransport.New(cfg.SlackBotToken, cfg.SlackAPIURL, cfg.RequestsPerSecond), nil
	})

	// Register history repository
	do.Provide(injector, func(i do.Injector) (messageRepo.Repository, error) {
		return do.MustInvoke[*slackTransport.Client](i), nil
	})

	// Register permalink repository
	do.Provide(injector, func(i do.Injector) (publishRepo.Linker, error) {
		return do.MustInvoke[*slackTransport.Client](i), nil
	})

	// Register destination poster
	do.Provide(injector, func(i do.Injector) (publishRepo.Poster, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Destination != config.DestinationTelegram {
			return do.MustInvoke[*slackTransport.Client](i), nil
		}

		var opts []bot.Option
		if cfg.TelegramAPIURL != "" {
			opts = append(opts, bot.WithServerURL(cfg.TelegramAPIURL))
		}

		client, err := telegram.New(cfg.TelegramBotToken, cfg.RequestsPerSecond, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram client").Wrap(err)
		}
		return client, nil
	})

	// Register translation model
	do.Provide(injector, func(i do.Injector) (translationRepo.Model, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return gemini.New(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel), nil
	})

	// Register Window Service
	do.Provide(injector, func(i do.Injector) (*windowService.Service, error) {
		svc, err := windowService.New(time.Now)
		if err != nil {
			return nil, oops.With("context", "failed to create window service").Wrap(err)
		}
		return svc, nil
	})

	// Register Message Service
	do.Provide(injector, func(i do.Injector) (*messageService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo := do.MustInvoke[messageRepo.Repository](i)
		return messageService.New(repo, cfg.HistoryLimit), nil
	})

	// Register Translation Service
	do.Provide(injector, func(i do.Injector) (*translationService.Service, error) {
		model := do.MustInvoke[translationRepo.Model](i)
		return translationService.New(model), nil
	})

	// Register Publish Service
	do.Provide(injector, func(i do.Injector) (*publishService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		poster, err := do.Invoke[publishRepo.Poster](i)
		if err != nil {
			return nil, oops.With("context", "failed to resolve destination poster").Wrap(err)
		}
		linker := do.MustInvoke[publishRepo.Linker](i)
		window := do.MustInvoke[*windowService.Service](i)
		return publishService.New(poster, linker, cfg.OriginalChannelID, DestinationID(cfg), window.Location()), nil
	})

	// Register Relay Service
	do.Provide(injector, func(i do.Injector) (*relayService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		window := do.MustInvoke[*windowService.Service](i)
		messages := do.MustInvoke[*messageService.Service](i)
		translator := do.MustInvoke[*translationService.Service](i)
		publisher, err := do.Invoke[*publishService.Service](i)
		if err != nil {
			return nil, oops.With("context", "failed to create publish service").Wrap(err)
		}
		return relayService.New(window, messages, translator, publisher, cfg.OriginalChannelID), nil
	})

	return injector
}

// Shutdown releases every service the container has built
func Shutdown(injector do.Injector) error {
	report := injector.Shutdown()
	if report != nil && len(report.Errors) > 0 {
		return oops.With("context", "failed to shut down services").Wrap(report)
	}

	return nil
}

// DestinationID returns the channel or chat translations are posted to
func DestinationID(cfg *config.Config) string {
	if cfg.Destination == config.DestinationTelegram {
		return cfg.TelegramChatID
	}
	return cfg.TranslatedChannelID
}
