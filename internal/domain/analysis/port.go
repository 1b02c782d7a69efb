package analysis

import "context"

// Client port onto the proxy. Both operations absorb transport and shape
// errors into a normalized Result; they never return a Go error to callers.
type Client interface {
	AnalyzeImage(ctx context.Context, imageData string) Result
	SendChatMessage(ctx context.Context, userMessage string) Result
}

// HistoryStore port for the persisted record of past analyses
type HistoryStore interface {
	List(ctx context.Context) []HistoryItem
	Append(ctx context.Context, res Result) (HistoryItem, error)
	Delete(ctx context.Context, id string) error
}
