package translator

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// OpenAISDKService is the Completer backed by the official OpenAI Go SDK.
// It is selected with client: sdk.
type OpenAISDKService struct {
	baseURL string
	opts    []option.RequestOption
}

func NewOpenAISDKService(cfg ServiceConfig) *OpenAISDKService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	return &OpenAISDKService{baseURL: baseURL, opts: opts}
}

func (s *OpenAISDKService) Name() string {
	return "openai-sdk"
}

func (s *OpenAISDKService) Complete(ctx context.Context, apiKey string, req ChatRequest) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("%s: API key required", s.Name())
	}

	opts := make([]option.RequestOption, 0, len(s.opts)+1)
	opts = append(opts, s.opts...)
	opts = append(opts, option.WithAPIKey(apiKey))
	client := openai.NewClient(opts...)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", statusError(s.Name(), apiErr.StatusCode, apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("%s: request failed: %w", s.Name(), err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%s: %w", s.Name(), ErrEmptyResponse)
	}

	return completion.Choices[0].Message.Content, nil
}
