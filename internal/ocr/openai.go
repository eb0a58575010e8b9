package ocr

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/ppiankov/jorfcheck/internal/model"
)

const transcribePrompt = `Transcris fidèlement tout le texte de cette page du Journal officiel.
Conserve les retours à la ligne. Ne résume pas, ne commente pas, ne traduis pas.`

// OpenAIEngine transcribes page images with an OpenAI-compatible vision model
type OpenAIEngine struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIEngine creates a vision OCR engine
func NewOpenAIEngine(cfg model.OpenAIConfig) (*OpenAIEngine, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key is required", ErrEngineUnavailable)
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &OpenAIEngine{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     modelName,
		maxTokens: maxTokens,
	}, nil
}

// Name returns the engine name
func (e *OpenAIEngine) Name() string { return EngineOpenAI }

// Recognize sends the page as an inline image and returns the transcription
func (e *OpenAIEngine) Recognize(ctx context.Context, img Image) (string, error) {
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(img.PNG)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: transcribePrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
		MaxTokens:   e.maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
