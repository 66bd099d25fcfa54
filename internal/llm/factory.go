package llm

import (
	"fmt"
	"strings"
)

// NewClient creates an LLM client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "deepseek":
		return newOpenAICompatClient(cfg, deepSeekBaseURL, deepSeekModel)
	case "openai":
		return newOpenAICompatClient(cfg, openAIBaseURL, openAIModel)
	case "gemini":
		return newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
