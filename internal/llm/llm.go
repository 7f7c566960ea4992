// Package llm asks a chat model to write the weekly league recap.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/omarshaarawi/ffreport/internal/config"
)

const DefaultSystemPrompt = "You are a helpful fantasy football assistant."

var ErrEmptyResponse = errors.New("model returned no content")

// Prompt is one recap request.
type Prompt struct {
	System     string
	Current    string
	Historical string
}

// UserContent is the message carrying the league data.
func (p Prompt) UserContent() string {
	return fmt.Sprintf("## Current Week Data\n\n%s\n\n## Historical Data\n\n%s", p.Current, p.Historical)
}

// Provider generates a recap for a prompt.
type Provider interface {
	Name() string
	Generate(ctx context.Context, p Prompt) (string, error)
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// NewProvider returns the named provider configured from cfg.
func NewProvider(name string, cfg config.LLM) (Provider, error) {
	switch name {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is required")
		}
		return NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel), nil
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, errors.New("GOOGLE_GEMINI_API_KEY is required")
		}
		return NewGemini(cfg.GeminiKey, cfg.GeminiModel), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}
