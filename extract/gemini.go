package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/budgetiq/budget"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

const geminiModel = "gemini-3-pro-preview"

// instruction asks for a strict JSON answer so parsing stays trivial. The
// category list is pinned in the prompt rather than left to the model.
func instruction() string {
	return fmt.Sprintf("Analyze this receipt image. Extract the total amount, "+
		"merchant name, date (YYYY-MM-DD format), and suggest a category from: %s. "+
		"If details are missing, estimate or use current date.",
		"'"+strings.Join(budget.Categories, "', '")+"'")
}

// GeminiBackend reads receipts with Gemini. The client picks up GEMINI_API_KEY
// from the environment.
type GeminiBackend struct {
	client *genai.Client
}

func NewGeminiBackend(ctx context.Context) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini's client: %w", err)
	}
	return &GeminiBackend{client: client}, nil
}

func (g *GeminiBackend) Analyze(ctx context.Context, mimeType string, image []byte) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
			{Text: instruction()},
		},
	}}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount":   {Type: genai.TypeNumber},
				"merchant": {Type: genai.TypeString},
				"date":     {Type: genai.TypeString},
				"category": {Type: genai.TypeString},
			},
			Required: []string{"amount", "merchant", "date", "category"},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, config)
	if err != nil {
		logger.Error().Err(err).Msg("Gemini call failed")
		return "", fmt.Errorf("gemini: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty answer")
	}
	return text, nil
}
