// Package gemini owns construction of the generative-model client. One client
// is built per process and handed to every component that needs it.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model answers without any content.
var ErrEmptyResponse = errors.New("empty response from Gemini")

// ContentGenerator is satisfied by *genai.Models.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewClient creates a Gemini API client for apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

// ResponseText concatenates the text parts of the first candidate.
func ResponseText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}

// ResponseAudio concatenates the inline data parts of the first candidate and
// returns them with the MIME type of the first blob.
func ResponseAudio(result *genai.GenerateContentResponse) ([]byte, string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, "", ErrEmptyResponse
	}

	var (
		data     []byte
		mimeType string
	)
	for _, part := range result.Candidates[0].Content.Parts {
		if part == nil || part.InlineData == nil {
			continue
		}
		if mimeType == "" {
			mimeType = part.InlineData.MIMEType
		}
		data = append(data, part.InlineData.Data...)
	}
	if len(data) == 0 {
		return nil, "", ErrEmptyResponse
	}
	return data, mimeType, nil
}
