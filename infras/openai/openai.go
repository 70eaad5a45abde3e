package openai

//go:generate go run go.uber.org/mock/mockgen -source=./openai.go -destination=./mocks/openai_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"tasker/config"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// Client wraps the chat completion surface of the OpenAI API.
type Client interface {
	CreateCompletion(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error)
	CreateCompletionStream(ctx context.Context, messages []openai.ChatCompletionMessage) (CompletionStream, error)
}

// CompletionStream yields chunks of a streamed chat completion.
type CompletionStream interface {
	Recv() (openai.ChatCompletionStreamResponse, error)
	Close() error
}

type clientImpl struct {
	sdk   *openai.Client
	model string
}

func (c *clientImpl) CreateCompletion(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error) {
	request := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}

	if len(tools) > 0 {
		request.Tools = tools
		request.ToolChoice = "auto"
	}

	response, err := c.sdk.CreateChatCompletion(ctx, request)
	if err != nil {
		log.Error().Err(err).Str("model", c.model).Msg("Chat completion request failed")
		return openai.ChatCompletionMessage{}, fmt.Errorf("creating chat completion: %w", err)
	}

	if len(response.Choices) == 0 {
		log.Error().Str("model", c.model).Msg("Chat completion returned no choices")
		return openai.ChatCompletionMessage{}, fmt.Errorf("chat completion returned no choices")
	}

	return response.Choices[0].Message, nil
}

func (c *clientImpl) CreateCompletionStream(ctx context.Context, messages []openai.ChatCompletionMessage) (CompletionStream, error) {
	request := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   true,
	}

	stream, err := c.sdk.CreateChatCompletionStream(ctx, request)
	if err != nil {
		log.Error().Err(err).Str("model", c.model).Msg("Chat completion stream request failed")
		return nil, fmt.Errorf("creating chat completion stream: %w", err)
	}

	return stream, nil
}

func New(config *config.Config) Client {
	sdkConfig := openai.DefaultConfig(config.OpenAI.APIKey)

	if config.OpenAI.BaseURL != "" {
		sdkConfig.BaseURL = strings.TrimRight(config.OpenAI.BaseURL, "/")
	}

	sdk := openai.NewClientWithConfig(sdkConfig)

	return &clientImpl{
		sdk:   sdk,
		model: config.OpenAI.Model,
	}
}
