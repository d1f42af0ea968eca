package chat

import "fmt"

// Language selects the assistant's reply language.
type Language string

const (
	Portuguese Language = "pt"
	English    Language = "en"
	Spanish    Language = "es"
)

// Languages lists the supported languages in display order.
var Languages = []Language{Portuguese, English, Spanish}

var greetings = map[Language]string{
	Portuguese: "Olá! Sou seu assistente de SEO. Como posso ajudar a otimizar sua estratégia de busca hoje?",
	English:    "Hello! I am your SEO assistant. How can I help you optimize your search strategy today?",
	Spanish:    "¡Hola! Soy tu asistente de SEO. ¿Cómo puedo ayudarte a optimizar tu estrategia de búsqueda hoy?",
}

var systemInstructions = map[Language]string{
	Portuguese: "Você é um assistente de SEO prestativo e amigável, especialista em marketing digital e análise de dados. Responda em português.",
	English:    "You are a helpful and friendly SEO assistant, an expert in digital marketing and data analysis. Respond in English.",
	Spanish:    "Eres un asistente de SEO servicial y amigable, experto en marketing digital y análisis de datos. Responde en español.",
}

var labels = map[Language]string{
	Portuguese: "Português",
	English:    "English",
	Spanish:    "Español",
}

// ParseLanguage validates a language code.
func ParseLanguage(code string) (Language, error) {
	lang := Language(code)
	if _, ok := greetings[lang]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return lang, nil
}

// Greeting is the assistant's opening line, shown before the first message.
func (l Language) Greeting() string { return greetings[l] }

// SystemInstruction is sent with every request of a session.
func (l Language) SystemInstruction() string { return systemInstructions[l] }

// Label is the language's own name for itself.
func (l Language) Label() string { return labels[l] }
