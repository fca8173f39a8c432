package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates an LLM provider based on the configuration.
// Returns nil when no provider is configured; callers should treat a
// nil provider as "LLM features disabled".
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "":
		return nil, nil
	case "openai":
		return NewOpenAIProvider(config)
	case "anthropic", "claude":
		return NewAnthropicProvider(config)
	case "ollama":
		return NewOllamaProvider(config)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}
