package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/LightDevCoder/iPurseLight/internal/common"
	"github.com/LightDevCoder/iPurseLight/internal/llm"
)

// Environment variables consulted for provider API keys when the config
// file has none.
var providerKeyEnvVars = map[string]string{
	"deepseek": "DEEPSEEK_API_KEY",
	"openai":   "OPENAI_API_KEY",
	"gemini":   "GEMINI_API_KEY",
}

// LoadLLMConfig loads the AI client configuration from Viper and
// environment variables. Precedence:
// 1. Viper configuration (from config file or IPURSE_ env vars)
// 2. Provider-specific environment variables (DEEPSEEK_API_KEY etc.)
// 3. Default values
func LoadLLMConfig() (llm.Config, error) {
	provider := strings.ToLower(viper.GetString("ai.provider"))
	if provider == "" {
		provider = "deepseek"
	}

	cfg := llm.Config{
		Provider:    provider,
		APIKey:      viper.GetString("ai." + provider + ".api_key"),
		BaseURL:     viper.GetString("ai." + provider + ".base_url"),
		Model:       viper.GetString("ai." + provider + ".model"),
		Temperature: 0.3,
		MaxTokens:   viper.GetInt("ai.max_tokens"),
		RateLimit:   viper.GetInt("ai.rate_limit"),
		MaxRetries:  viper.GetInt("ai.max_retries"),
	}

	// Zero is a meaningful temperature, so the default applies only when
	// the key is absent.
	if viper.IsSet("ai.temperature") {
		cfg.Temperature = viper.GetFloat64("ai.temperature")
	}

	if cfg.APIKey == "" {
		if envVar, ok := providerKeyEnvVars[provider]; ok {
			cfg.APIKey = strings.TrimSpace(os.Getenv(envVar))
		}
	}
	if cfg.APIKey == "" {
		return llm.Config{}, fmt.Errorf("%w: no API key configured for provider %s", common.ErrMissingConfig, provider)
	}

	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}

	return cfg, nil
}

// ResolveTimezone maps a timezone flag value to a location. An empty value
// means the system local zone.
func ResolveTimezone(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %w", common.ErrInvalidConfig, name, err)
	}
	return loc, nil
}
