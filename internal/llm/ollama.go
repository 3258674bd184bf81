package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

var ErrEmptyResponse = errors.New("model returned no choices")

type Config struct {
	ServerURL      string
	ChatModel      string
	EmbeddingModel string
	Temperature    float64
	MaxTokens      int
	Timeout        time.Duration
}

// Client wraps the Ollama chat and embedding models behind one handle. The
// generation call carries a timeout so a hung model cannot block a request
// forever.
type Client struct {
	chat        *ollama.LLM
	embedder    *ollama.LLM
	http        *resty.Client
	serverURL   string
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	chat, err := ollama.New(ollama.WithServerURL(cfg.ServerURL), ollama.WithModel(cfg.ChatModel))
	if err != nil {
		return nil, fmt.Errorf("could not create chat model client: %w", err)
	}

	embedder, err := ollama.New(ollama.WithServerURL(cfg.ServerURL), ollama.WithModel(cfg.EmbeddingModel))
	if err != nil {
		return nil, fmt.Errorf("could not create embedding model client: %w", err)
	}

	return &Client{
		chat:        chat,
		embedder:    embedder,
		http:        resty.New().SetBaseURL(cfg.ServerURL),
		serverURL:   cfg.ServerURL,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
	}, nil
}

// Generate runs a single prompt through the chat model and returns the first
// choice's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := c.chat.GenerateContent(ctx, messages,
		llms.WithTemperature(c.temperature),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Content, nil
}

func (c *Client) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (c *Client) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := c.embedder.CreateEmbedding(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding call failed: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d vectors for %d texts", len(vectors), len(texts))
	}
	return vectors, nil
}

// Ping reports whether the Ollama server is reachable. Used by the status
// endpoint and at startup.
func (c *Client) Ping(ctx context.Context) bool {
	resp, err := c.http.R().SetContext(ctx).Get("/api/tags")
	return err == nil && resp.IsSuccess()
}
