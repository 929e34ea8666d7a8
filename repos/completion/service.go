package completion

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/xerrors"
)

var ErrEmptyCompletion = errors.New("completion: empty response")

type Options struct {
	// BaseURL is the API root, e.g. https://o.nodux.fun/v1.
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration

	HTTPClient *http.Client
}

// Service talks to an OpenAI-compatible chat-completions endpoint.
type Service struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewService(opts Options) *Service {
	config := openai.DefaultConfig(opts.APIKey)
	config.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	// HTTPClient is an interface in go-openai, so a nil *http.Client must not reach it.
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	config.HTTPClient = httpClient

	return &Service{
		client:      openai.NewClientWithConfig(config),
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
	}
}

// Complete sends prompt as a single user message and returns the first choice.
func (s *Service) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return "", xerrors.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
