package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/reshetovitsme/slack-translate-relay/internal/modules/translation/repository"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/errors"
	"github.com/samber/mo"
	"github.com/samber/oops"
)

// Service translates message text into TargetLanguage
type Service struct {
	model       repository.Model
	instruction string
}

// New creates a new translation service
func New(model repository.Model) *Service {
	return &Service{
		model:       model,
		instruction: Instruction(),
	}
}

// Translate returns the translated text. Blank input yields Ok("") without
// calling the model; any model failure yields an error result.
func (s *Service) Translate(ctx context.Context, text string) mo.Result[string] {
	if strings.TrimSpace(text) == "" {
		return mo.Ok("")
	}

	start := time.Now()
	translated, err := s.model.Complete(ctx, s.instruction, text)
	if err != nil {
		slog.Error("Error translating text", "model", s.model.Name(), "error", err)
		return mo.Err[string](oops.With("model", s.model.Name()).Wrap(err))
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		slog.Error("Error translating text", "model", s.model.Name(), "error", errors.ErrEmptyTranslation)
		return mo.Err[string](errors.ErrEmptyTranslation)
	}

	slog.Debug("Text translated", "model", s.model.Name(), "duration_ms", time.Since(start).Milliseconds())

	return mo.Ok(translated)
}
