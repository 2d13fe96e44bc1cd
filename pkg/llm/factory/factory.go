package factory

import (
	"smart-negotiator-be/pkg/llm"
	"smart-negotiator-be/pkg/llm/anthropic"
	"smart-negotiator-be/pkg/llm/gemini"
	"smart-negotiator-be/pkg/llm/ollama"
	"smart-negotiator-be/pkg/llm/openai"
)

// ChainConfig carries the credentials and local fallback settings for the
// provider chain. A provider without credentials is skipped, not an error.
type ChainConfig struct {
	OpenAIKey    string
	GeminiKey    string
	AnthropicKey string
	OllamaURL    string
	OllamaModel  string
}

// NewProviderChain builds the ordered list of LLM providers. Preference order
// is fixed: OpenAI, Gemini, Anthropic, then local Ollama when a model is
// configured. Callers iterate the chain and take the first success.
func NewProviderChain(cfg ChainConfig) []llm.LLMProvider {
	var chain []llm.LLMProvider

	if cfg.OpenAIKey != "" {
		chain = append(chain, openai.NewOpenAIProvider(cfg.OpenAIKey, ""))
	}
	if cfg.GeminiKey != "" {
		chain = append(chain, gemini.NewGeminiProvider(cfg.GeminiKey, ""))
	}
	if cfg.AnthropicKey != "" {
		chain = append(chain, anthropic.NewAnthropicProvider(cfg.AnthropicKey, ""))
	}
	if cfg.OllamaModel != "" {
		chain = append(chain, ollama.NewOllamaProvider(cfg.OllamaURL, cfg.OllamaModel))
	}

	return chain
}
