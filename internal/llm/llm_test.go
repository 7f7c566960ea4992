package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/ffreport/internal/config"
)

var testPrompt = Prompt{System: "Be funny.", Current: "week 3", Historical: noHistory}

func TestUserContent(t *testing.T) {
	assert.Equal(t, "## Current Week Data\n\nweek 3\n\n## Historical Data\n\nNo historical data found.", testPrompt.UserContent())
}

func TestOpenAIGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, chatMessage{Role: "system", Content: "Be funny."}, req.Messages[0])
		assert.Equal(t, testPrompt.UserContent(), req.Messages[1].Content)

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"What a week."}}]}`))
	}))
	defer srv.Close()

	o := NewOpenAI("sk-test", "", WithOpenAIBaseURL(srv.URL+"/"), WithOpenAIHTTPClient(srv.Client()))
	text, err := o.Generate(context.Background(), testPrompt)
	require.NoError(t, err)
	assert.Equal(t, "What a week.", text)
}

func TestOpenAIErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		errMsg string
	}{
		{"api error", http.StatusUnauthorized, `{"error":{"message":"bad key"}}`, "bad key"},
		{"plain status", http.StatusBadGateway, `oops`, "unexpected status code: 502"},
		{"no choices", http.StatusOK, `{"choices":[]}`, ErrEmptyResponse.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			o := NewOpenAI("k", "gpt-4o-mini", WithOpenAIBaseURL(srv.URL))
			_, err := o.Generate(context.Background(), testPrompt)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGeminiGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "g-key", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 3)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Equal(t, "Be funny.", req.Contents[0].Parts[0].Text)
		assert.Equal(t, "model", req.Contents[1].Role)
		assert.Equal(t, geminiAck, req.Contents[1].Parts[0].Text)
		assert.Equal(t, testPrompt.UserContent(), req.Contents[2].Parts[0].Text)

		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Part one. "},{"text":"Part two."}]}}]}`))
	}))
	defer srv.Close()

	g := NewGemini("g-key", "", WithGeminiBaseURL(srv.URL), WithGeminiHTTPClient(srv.Client()))
	text, err := g.Generate(context.Background(), testPrompt)
	require.NoError(t, err)
	assert.Equal(t, "Part one. Part two.", text)
}

func TestGeminiEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := NewGemini("k", "", WithGeminiBaseURL(srv.URL)).Generate(context.Background(), testPrompt)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewProvider(t *testing.T) {
	cfg := config.LLM{OpenAIKey: "o", GeminiKey: "g"}

	p, err := NewProvider("openai", cfg)
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	p, err = NewProvider("gemini", cfg)
	require.NoError(t, err)
	assert.Equal(t, "gemini", p.Name())

	_, err = NewProvider("openai", config.LLM{})
	assert.Error(t, err)
	_, err = NewProvider("claude", cfg)
	assert.Error(t, err)
}

func TestSystemPrompt(t *testing.T) {
	file := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(file, []byte("Roast the league.\nData: [paste here]\n"), 0o644))

	assert.Equal(t, "Roast the league.", SystemPrompt(file))
	assert.Equal(t, DefaultSystemPrompt, SystemPrompt(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestProviderBreakerOpens(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	providers := []Provider{
		NewOpenAI("k", "", WithOpenAIBaseURL(srv.URL)),
		NewGemini("k", "", WithGeminiBaseURL(srv.URL)),
	}
	for _, p := range providers {
		t.Run(p.Name(), func(t *testing.T) {
			hits.Store(0)
			for i := 0; i < 3; i++ {
				_, err := p.Generate(context.Background(), testPrompt)
				require.Error(t, err)
				assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
			}
			_, err := p.Generate(context.Background(), testPrompt)
			assert.ErrorIs(t, err, gobreaker.ErrOpenState)
			assert.Equal(t, int32(3), hits.Load())
		})
	}
}
