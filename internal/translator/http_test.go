package translator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testChatRequest() ChatRequest {
	return ChatRequest{
		Model: "gpt-4o",
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a translator."},
			{Role: RoleUser, Content: "Good morning"},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func completionBody(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]interface{}{"role": "assistant", "content": content},
			},
		},
	}
}

func TestOpenAIService_Complete_Success(t *testing.T) {
	var got ChatRequest
	var auth, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, completionBody("  காலை வணக்கம்\n"))
	}))
	defer server.Close()

	svc := NewOpenAIService(ServiceConfig{BaseURL: server.URL + "/v1"})

	content, err := svc.Complete(context.Background(), "sk-test", testChatRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "  காலை வணக்கம்\n" {
		t.Errorf("content must be returned untrimmed, got %q", content)
	}
	if auth != "Bearer sk-test" {
		t.Errorf("expected bearer auth, got %q", auth)
	}
	if path != "/v1/chat/completions" {
		t.Errorf("unexpected path %q", path)
	}
	if got.Temperature != 0.3 || got.MaxTokens != 2000 || got.Model != "gpt-4o" {
		t.Errorf("unexpected request body: %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != RoleSystem || got.Messages[1].Content != "Good morning" {
		t.Errorf("unexpected messages: %+v", got.Messages)
	}
}

func TestOpenAIService_Complete_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"error": map[string]string{
				"message": "Incorrect API key provided: sk-bad.",
				"type":    "invalid_request_error",
				"code":    "invalid_api_key",
			},
		})
	}))
	defer server.Close()

	svc := NewOpenAIService(ServiceConfig{BaseURL: server.URL})

	_, err := svc.Complete(context.Background(), "sk-bad", testChatRequest())
	if !errors.Is(err, ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
}

func TestOpenAIService_Complete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	svc := NewOpenAIService(ServiceConfig{BaseURL: server.URL})

	_, err := svc.Complete(context.Background(), "sk-test", testChatRequest())
	if err == nil {
		t.Fatal("expected error for non-OK status")
	}
	if errors.Is(err, ErrAuthentication) {
		t.Error("server error must not be classified as authentication failure")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "upstream exploded") {
		t.Errorf("expected status and body in error, got %v", err)
	}
}

func TestOpenAIService_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	svc := NewOpenAIService(ServiceConfig{BaseURL: server.URL})

	_, err := svc.Complete(context.Background(), "sk-test", testChatRequest())
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestOpenAIService_Complete_NoAPIKey(t *testing.T) {
	svc := NewOpenAIService(ServiceConfig{BaseURL: "http://127.0.0.1:0"})

	_, err := svc.Complete(context.Background(), "", testChatRequest())
	if err == nil {
		t.Error("expected error when no API key")
	}
}

func TestOpenAIService_Name(t *testing.T) {
	if got := NewOpenAIService(ServiceConfig{}).Name(); got != "openai" {
		t.Errorf("expected 'openai', got %q", got)
	}
}

func TestOpenAISDKService_Complete_Success(t *testing.T) {
	var auth, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		writeJSON(w, http.StatusOK, completionBody("नमस्ते"))
	}))
	defer server.Close()

	svc := NewOpenAISDKService(ServiceConfig{BaseURL: server.URL + "/v1"})

	content, err := svc.Complete(context.Background(), "sk-test", testChatRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "नमस्ते" {
		t.Errorf("unexpected content %q", content)
	}
	if auth != "Bearer sk-test" {
		t.Errorf("expected bearer auth, got %q", auth)
	}
	if path != "/v1/chat/completions" {
		t.Errorf("unexpected path %q", path)
	}
}

func TestOpenAISDKService_Complete_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"error": map[string]string{
				"message": "Incorrect API key provided: sk-bad.",
				"type":    "invalid_request_error",
				"code":    "invalid_api_key",
			},
		})
	}))
	defer server.Close()

	svc := NewOpenAISDKService(ServiceConfig{BaseURL: server.URL})

	_, err := svc.Complete(context.Background(), "sk-bad", testChatRequest())
	if !errors.Is(err, ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		code     string
		message  string
		wantAuth bool
	}{
		{name: "401", status: 401, message: "nope", wantAuth: true},
		{name: "invalid_api_key code", status: 400, code: "invalid_api_key", wantAuth: true},
		{name: "incorrect key message", status: 403, message: "Incorrect API key provided", wantAuth: true},
		{name: "rate limited", status: 429, message: "slow down"},
		{name: "empty message", status: 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := statusError("openai", tt.status, tt.code, tt.message)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrAuthentication); got != tt.wantAuth {
				t.Errorf("auth classification: expected %v, got %v (%v)", tt.wantAuth, got, err)
			}
		})
	}
}
