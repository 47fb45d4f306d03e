package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/video-digest/internal/gemini"
	"github.com/nguyentantai21042004/video-digest/internal/model"
)

const summaryPrompt = "Summarize this transcript concisely: %s"

const bulletPrompt = `Based on this summary, create %[1]d detailed bullet points that capture key insights:
Summary: %[2]s
Please format as a list of %[1]d bullet points.`

// Summarize asks the model for a concise summary of transcript.
func (s *implSummarizer) Summarize(ctx context.Context, transcript model.Transcript) (model.Summary, error) {
	s.logger.Info(ctx, "Summarizing transcript (%d characters) with %s", len(transcript), s.model)

	text, err := s.callGemini(ctx, fmt.Sprintf(summaryPrompt, transcript))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return model.Summary(text), nil
}

// DetailPoints asks the model for bulletCount bullet points. The count is a
// request, not a guarantee; a different count is only logged.
func (s *implSummarizer) DetailPoints(ctx context.Context, summary model.Summary) (string, error) {
	s.logger.Info(ctx, "Requesting %d detail points", s.bulletCount)

	text, err := s.callGemini(ctx, fmt.Sprintf(bulletPrompt, s.bulletCount, summary))
	if err != nil {
		return "", fmt.Errorf("detail points: %w", err)
	}

	if got := len(model.SplitBullets(text)); got != s.bulletCount {
		s.logger.Warn(ctx, "Model returned %d lines, asked for %d bullet points", got, s.bulletCount)
	}
	return text, nil
}

// callGemini sends a single text prompt and returns the text answer.
func (s *implSummarizer) callGemini(ctx context.Context, prompt string) (string, error) {
	result, err := s.models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return gemini.ResponseText(result)
}
