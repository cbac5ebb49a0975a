package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pathway-infinity/pathway-api/config"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

type OpenAICompleter struct {
	client *openai.Client
	model  string
}

func NewOpenAICompleter(cfg *config.Config) *OpenAICompleter {
	clientCfg := openai.DefaultConfig(cfg.LLM.OpenAIKey)
	if cfg.LLM.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.LLM.OpenAIBaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.LLM.Timeout}

	log.Info().Str("model", cfg.LLM.OpenAIModel).Msg("OpenAI completer initialized")
	return &OpenAICompleter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.LLM.OpenAIModel,
	}
}

func (c *OpenAICompleter) Name() string { return "openai" }

func (c *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned from OpenAI API")
	}
	return resp.Choices[0].Message.Content, nil
}
