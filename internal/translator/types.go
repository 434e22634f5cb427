package translator

import (
	"context"
	"time"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o"
)

// ServiceConfig configures the chat-completion endpoint. The API key is not
// part of it: keys travel with each call so that they take part in
// memoization.
type ServiceConfig struct {
	BaseURL string        `mapstructure:"base_url" json:"base_url"`
	Model   string        `mapstructure:"model" json:"model"`
	Client  string        `mapstructure:"client" json:"client"`
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Role tags a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is one chat-completion call.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Completer sends a chat request and returns the content of the first
// choice, untrimmed. Implementations wrap credential rejections with
// ErrAuthentication.
type Completer interface {
	Name() string
	Complete(ctx context.Context, apiKey string, req ChatRequest) (string, error)
}
