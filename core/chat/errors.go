package chat

import "errors"

var (
	ErrChatFailed          = errors.New("não foi possível comunicar com o chatbot")
	ErrUnsupportedLanguage = errors.New("unsupported chat language")
	ErrEmptyMessage        = errors.New("empty chat message")
)
