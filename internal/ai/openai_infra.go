package ai

import (
	"context"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/chaitravc/AI-VOICE-AGENT/internal/apperr"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/history"
)

type OpenAIClient struct {
	client *openai.Client
}

func NewOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
	}
}

func (c *OpenAIClient) Respond(ctx context.Context, utterance string) (string, error) {
	return c.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: utterance},
	})
}

func (c *OpenAIClient) RespondWithHistory(ctx context.Context, turns []history.Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(t.Role),
			Content: t.Content,
		})
	}
	return c.complete(ctx, messages)
}

func (c *OpenAIClient) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    openai.GPT4oMini,
		Messages: messages,
	})
	if err != nil {
		return "", apperr.New(apperr.KindLLM, "chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperr.Newf(apperr.KindLLM, "chat completion", "empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
