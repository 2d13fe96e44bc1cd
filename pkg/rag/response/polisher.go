package response

import (
	"context"
	"fmt"
	"strings"

	"smart-negotiator-be/internal/constant"
	"smart-negotiator-be/internal/pkg/logger"
	"smart-negotiator-be/pkg/llm"
)

const (
	polishTemperature = 0.7
	polishMaxTokens   = 300
)

// Polisher optionally rewrites a factual retrieval answer in a friendlier
// voice. It is strictly best-effort: any provider trouble returns the plain
// answer untouched, never an error.
type Polisher struct {
	providers []llm.LLMProvider
	logger    logger.ILogger
}

func NewPolisher(providers []llm.LLMProvider, log logger.ILogger) *Polisher {
	return &Polisher{
		providers: providers,
		logger:    log,
	}
}

// Polish returns a reworded answer, or the original when no provider is
// configured or every provider fails.
func (p *Polisher) Polish(ctx context.Context, answer, query string) string {
	if len(p.providers) == 0 {
		return answer
	}

	prompt := fmt.Sprintf("%s\n\nUser asked: %s\nAnswer to rewrite: %s",
		constant.AnswerPolishPromptV1, query, answer)

	for _, provider := range p.providers {
		polished, err := provider.Generate(ctx, prompt,
			llm.WithTemperature(polishTemperature),
			llm.WithMaxTokens(polishMaxTokens),
		)
		if err != nil {
			p.logger.Warn("response", "Polish attempt failed", map[string]interface{}{
				"provider": provider.Name(),
				"error":    err.Error(),
			})
			continue
		}
		polished = strings.TrimSpace(polished)
		if polished == "" {
			continue
		}
		return polished
	}

	return answer
}
