package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel = "gemini-2.5-flash"
	geminiAck          = "Okay, I understand. How can I help?"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Gemini primes the chat with the system prompt as a user turn, since the
// conversation starts from a model acknowledgement.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

type GeminiOption func(*Gemini)

func WithGeminiBaseURL(u string) GeminiOption {
	return func(g *Gemini) { g.baseURL = strings.TrimRight(u, "/") }
}

func WithGeminiHTTPClient(h *http.Client) GeminiOption {
	return func(g *Gemini) { g.client = h }
}

func NewGemini(apiKey, model string, opts ...GeminiOption) *Gemini {
	if model == "" {
		model = DefaultGeminiModel
	}
	g := &Gemini{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 2 * time.Minute},
		breaker: newBreaker("gemini"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Generate(ctx context.Context, p Prompt) (string, error) {
	body := geminiRequest{Contents: []geminiContent{
		{Role: "user", Parts: []geminiPart{{Text: p.System}}},
		{Role: "model", Parts: []geminiPart{{Text: geminiAck}}},
		{Role: "user", Parts: []geminiPart{{Text: p.UserContent()}}},
	}}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, url.QueryEscape(g.apiKey))

	result, err := g.breaker.Execute(func() (interface{}, error) {
		var resp geminiResponse
		if err := postJSON(ctx, g.client, endpoint, nil, body, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	})
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}

	resp := result.(*geminiResponse)
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
