// Package llm provides AI-assisted transaction parsing and financial advice
// through pluggable LLM providers.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for LLM providers.
type Client interface {
	// ParseTransaction extracts structured transaction fields from free text.
	ParseTransaction(ctx context.Context, text string) (ParsedTransaction, error)
	// Advise sends a report digest and returns the advisor's text verbatim.
	Advise(ctx context.Context, digest string) (string, error)
}

// ParsedTransaction is the strict JSON shape providers must return for a
// parse request.
type ParsedTransaction struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Note     string  `json:"note"`
	Channel  string  `json:"channel"`
	Amount   float64 `json:"amount"`
}

// Config holds provider selection and tuning for an LLM client.
type Config struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	RetryDelay  time.Duration
	MaxRetries  int
	RateLimit   int
	Temperature float64
	MaxTokens   int
}
