// Package llm provides centralized LLM configuration and client abstractions.
// This package enables swapping providers without touching the pipeline.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// DefaultModel is the model used when none is configured. Roast generation
// is a short creative task; the flash tier is plenty.
const DefaultModel = "gemini-2.5-flash"

// DefaultTimeout bounds a single generation call. On expiry the pipeline
// falls back to the local template generator.
const DefaultTimeout = 20 * time.Second

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	MaxTokens   int32
	Timeout     time.Duration
}

// DefaultConfig returns the default configuration (currently Gemini).
// Temperature is high on purpose: the roast should be creative, and the
// deterministic scoring happens downstream on whatever text comes back.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       DefaultModel,
		Temperature: 1.0,
		MaxTokens:   500,
		Timeout:     DefaultTimeout,
	}
}

// GetModel returns the configured model name, falling back to the default.
func (c *Config) GetModel() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}

// GetTimeout returns the configured timeout, falling back to the default.
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}
