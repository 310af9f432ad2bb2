package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(config)

	return &OpenAIProvider{
		client: client,
		model:  "gpt-4o",
	}
}

func completionJSON(content, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionJSON(`{"topic":"quarterly revenue","persona":"a financial analyst"}`, "stop"))
	}
	p := newTestOpenAIProvider(t, handler)

	resp, err := p.Generate(context.Background(), Request{
		System:   "You generate chart topics.",
		Messages: []Message{{Role: RoleUser, Content: "one topic please"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 65 {
		t.Errorf("total tokens = %d, want 65", resp.Usage.TotalTokens)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}

	var out struct {
		Topic string `json:"topic"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		t.Fatalf("parse content: %v", err)
	}
	if out.Topic != "quarterly revenue" {
		t.Errorf("topic = %q", out.Topic)
	}
}

func TestOpenAIProvider_SchemaValidation(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionJSON(`{"name":123}`, "stop"))
	}
	p := newTestOpenAIProvider(t, handler)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Schema: &Schema{
			Name: "named-thing",
			Definition: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{"type": "string"},
				},
				"required": []any{"name"},
			},
		},
	})
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestOpenAIProvider_TruncatedSchemaResponse(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionJSON(`{"name":"trunc`, "length"))
	}
	p := newTestOpenAIProvider(t, handler)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Schema: &Schema{
			Name:       "named-thing",
			Definition: map[string]any{"type": "object"},
		},
	})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}
}

func TestOpenAIProvider_RateLimitMapped(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "slow down", "type": "rate_limit_exceeded"},
		})
	}
	p := newTestOpenAIProvider(t, handler)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "go"}},
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
}

func TestNewOpenAIProvider_RequiresKeyAndModel(t *testing.T) {
	if _, err := NewOpenAIProvider(Profile{Model: "gpt-4o"}); err == nil {
		t.Error("expected error for missing key")
	}
	if _, err := NewOpenAIProvider(Profile{APIKey: "k"}); err == nil {
		t.Error("expected error for missing model")
	}
}
