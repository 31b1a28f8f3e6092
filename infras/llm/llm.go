package llm

//go:generate go run go.uber.org/mock/mockgen -source=./llm.go -destination=./mocks/llm_mock.go -package=mocks

import (
	"context"
	"fmt"

	"carre/config"
	"carre/infras/otel"
	"carre/shared/constant"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

// Client wraps a chat-completion backend behind a single-prompt call.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type clientImpl struct {
	api    *openai.Client
	config *config.Config
	otel   otel.Otel
}

func New(conf *config.Config, o otel.Otel) Client {
	clientConfig := openai.DefaultConfig(conf.External.LLM.APIKey)
	if conf.External.LLM.BaseURL != "" {
		clientConfig.BaseURL = conf.External.LLM.BaseURL
	}

	return &clientImpl{
		api:    openai.NewClientWithConfig(clientConfig),
		config: conf,
		otel:   o,
	}
}

func (c *clientImpl) Complete(ctx context.Context, systemPrompt, userPrompt string) (content string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelLLMScopeName, constant.OtelLLMScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	model := c.config.External.LLM.Model
	scope.SetAttribute("model", model)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     model,
		MaxTokens: c.config.External.LLM.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return constant.Empty, errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
