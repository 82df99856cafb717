package errors

import "errors"

var (
	ErrMissingSlackToken         = errors.New("SLACK_BOT_TOKEN environment variable is required")
	ErrMissingGeminiKey          = errors.New("GEMINI_API_KEY environment variable is required")
	ErrMissingSourceChannel      = errors.New("ORIGINAL_CHANNEL_ID environment variable is required")
	ErrMissingDestinationChannel = errors.New("TRANSLATED_CHANNEL_ID environment variable is required")
	ErrMissingTelegramConfig     = errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required for the telegram destination")
	ErrEmptyTranslation          = errors.New("translation service returned no text")
	ErrInvalidTimestamp          = errors.New("invalid message timestamp")
	ErrInvalidParentTimestamp    = errors.New("invalid parent message id")
)
