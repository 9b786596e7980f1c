package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIBackend reads receipts with an OpenAI vision model, as an
// alternative when no Gemini key is around.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

func NewOpenAIBackend() (*OpenAIBackend, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}
	return &OpenAIBackend{client: openai.NewClient(key), model: openai.GPT4oMini}, nil
}

func (o *OpenAIBackend) Analyze(ctx context.Context, mimeType string, image []byte) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
				{Type: openai.ChatMessagePartTypeText, Text: instruction()},
			},
		}},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("OpenAI call failed")
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty answer")
	}
	return resp.Choices[0].Message.Content, nil
}
