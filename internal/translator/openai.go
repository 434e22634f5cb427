package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

type openAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type openAIError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// OpenAIService calls an OpenAI-compatible chat-completions endpoint over
// plain HTTP.
type OpenAIService struct {
	baseURL string
	client  *resty.Client
}

func NewOpenAIService(cfg ServiceConfig) *OpenAIService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	return &OpenAIService{baseURL: baseURL, client: c}
}

func (s *OpenAIService) Name() string {
	return "openai"
}

func (s *OpenAIService) Complete(ctx context.Context, apiKey string, req ChatRequest) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("%s: API key required", s.Name())
	}

	var out openAIResponse
	var apiErr openAIError
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%s: request failed: %w", s.Name(), err)
	}

	if resp.IsError() {
		message := apiErr.Error.Message
		if message == "" {
			message = strings.TrimSpace(resp.String())
		}
		return "", statusError(s.Name(), resp.StatusCode(), apiErr.Error.Code, message)
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%s: %w", s.Name(), ErrEmptyResponse)
	}

	return out.Choices[0].Message.Content, nil
}
