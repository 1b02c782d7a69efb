package openai

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "strings"

    "github.com/medicode-ai/medicode/internal/domain/ai"
    "github.com/medicode-ai/medicode/internal/infra/ai/prompt"
    "github.com/sashabaranov/go-openai"
)

const maxTokens = 2048

type Client struct {
    *openai.Client
    Model string
}

func NewClient(apiKey, model string) *Client {
    return &Client{Client: openai.NewClient(apiKey), Model: model}
}

func (c *Client) model() string {
    if c.Model != "" {
        return c.Model
    }
    return "gpt-4o-mini"
}

// AnalyzeImage sends the photo as a data URI in a vision message and returns
// the raw completion text.
func (c *Client) AnalyzeImage(ctx context.Context, imageData string) (string, error) {
    req := openai.ChatCompletionRequest{
        Model: c.model(),
        Messages: []openai.ChatCompletionMessage{
            {
                Role: openai.ChatMessageRoleUser,
                MultiContent: []openai.ChatMessagePart{
                    {Type: openai.ChatMessagePartTypeText, Text: prompt.Analyze()},
                    {
                        Type: openai.ChatMessagePartTypeImageURL,
                        ImageURL: &openai.ChatMessageImageURL{
                            URL:    imageData,
                            Detail: openai.ImageURLDetailAuto,
                        },
                    },
                },
            },
        },
    }
    return c.complete(ctx, req)
}

// Chat sends the assistant prompt built around the user's question.
func (c *Client) Chat(ctx context.Context, userMessage string) (string, error) {
    req := openai.ChatCompletionRequest{
        Model: c.model(),
        Messages: []openai.ChatCompletionMessage{
            {Role: openai.ChatMessageRoleUser, Content: prompt.Chat(userMessage)},
        },
    }
    return c.complete(ctx, req)
}

func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
    // For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
    model := req.Model
    if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
        req.MaxCompletionTokens = maxTokens
    } else {
        req.MaxTokens = maxTokens
    }

    resp, err := c.CreateChatCompletion(ctx, req)
    if err != nil {
        var apiErr *openai.APIError
        if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
            return "", ai.ErrQuotaExceeded
        }
        return "", fmt.Errorf("failed to create chat completion: %w", err)
    }
    if len(resp.Choices) == 0 {
        return "", fmt.Errorf("completion returned no choices")
    }

    return resp.Choices[0].Message.Content, nil
}
