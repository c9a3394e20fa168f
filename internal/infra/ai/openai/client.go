package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/scamshield/internal/domain/ai"
	"github.com/bryanwahyu/scamshield/internal/infra/ai/prompt"
)

const maxTokens = 2048

const (
	DefaultVisionModel  = "gpt-4o-mini"
	DefaultInsightModel = "llama-3.3-70b-versatile"
)

// Client wraps go-openai for both image text extraction and advisor insight.
// BaseURL may point at any OpenAI compatible API (Groq, a local gateway).
type Client struct {
	*openai.Client
	Model       string
	Temperature float32
}

func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

var (
	_ ai.Extractor = (*Client)(nil)
	_ ai.Advisor   = (*Client)(nil)
)

// ExtractText sends the image as a data URL to a vision model.
func (c *Client) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("%w: empty image", ai.ErrExtraction)
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}
	model := c.Model
	if model == "" {
		model = DefaultVisionModel
	}

	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetExtractionPrompt()},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: "Transcribe the text in this screenshot."},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{
						URL:    dataURL,
						Detail: openai.ImageURLDetailHigh,
					}},
				},
			},
		},
	}
	setTokenLimit(&req, model)

	text, err := c.complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ai.ErrExtraction, err)
	}
	return text, nil
}

// Insight asks the model to explain the preliminary verdict in two sentences.
func (c *Client) Insight(ctx context.Context, text, status string, keywords []string) (string, error) {
	model := c.Model
	if model == "" {
		model = DefaultInsightModel
	}
	temp := c.Temperature
	if temp == 0 {
		temp = 0.3
	}
	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temp,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetInsightPrompt(text, status, keywords)},
		},
	}
	setTokenLimit(&req, model)
	return c.complete(ctx, req)
}

func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		if isQuota(err) {
			return "", fmt.Errorf("%w: %v", ai.ErrQuotaExceeded, err)
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
func setTokenLimit(req *openai.ChatCompletionRequest, model string) {
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
		req.Temperature = 0
		return
	}
	req.MaxTokens = maxTokens
}

func isQuota(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	return false
}
