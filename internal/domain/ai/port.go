package ai

import "context"

// Client is the upstream multimodal model the proxy brokers requests to.
type Client interface {
	// AnalyzeImage sends the medicine photo (a data-URI payload) and returns
	// the raw completion text.
	AnalyzeImage(ctx context.Context, imageData string) (string, error)
	// Chat sends a free-text health question and returns the raw completion text.
	Chat(ctx context.Context, userMessage string) (string, error)
}
