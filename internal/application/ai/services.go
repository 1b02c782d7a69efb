package ai

import (
	"context"

	"github.com/medicode-ai/medicode/internal/domain/ai"
	"github.com/medicode-ai/medicode/internal/domain/analysis"
	"github.com/medicode-ai/medicode/internal/parser"
)

// Service turns raw upstream completions into normalized three-language
// results. Parsing for both endpoints happens here, server-side, so clients
// always receive the split fields.
type Service struct {
	client ai.Client
}

func NewService(client ai.Client) *Service {
	return &Service{client: client}
}

// AnalyzeImage runs the vision completion and splits it into sections,
// substituting the image-analysis fallback for any missing language.
func (s *Service) AnalyzeImage(ctx context.Context, imageData string) (analysis.Result, error) {
	raw, err := s.client.AnalyzeImage(ctx, imageData)
	if err != nil {
		return analysis.Result{}, err
	}
	return splitSections(raw, analysis.FallbackText), nil
}

// Chat runs the text completion and splits it with the chat fallbacks.
func (s *Service) Chat(ctx context.Context, userMessage string) (analysis.Result, error) {
	raw, err := s.client.Chat(ctx, userMessage)
	if err != nil {
		return analysis.Result{}, err
	}
	return splitSections(raw, analysis.ChatFallbackText), nil
}

func splitSections(raw string, fallback func(analysis.Language) string) analysis.Result {
	sec := parser.Parse(raw, parser.DefaultLabels, parser.Fallbacks{
		English: fallback(analysis.LanguageEnglish),
		Tamil:   fallback(analysis.LanguageTamil),
		Hindi:   fallback(analysis.LanguageHindi),
	})
	return analysis.Result{
		Result:      sec.English,
		TamilResult: sec.Tamil,
		HindiResult: sec.Hindi,
	}
}
