package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sashabaranov/go-openai"
)

// OpenAIConfig configures an OpenAI-compatible endpoint. Chat and embeddings
// may live on different endpoints (and behind different keys).
type OpenAIConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	EmbBaseURL string
	EmbAPIKey  string
	EmbModel   string

	Timeout    time.Duration
	MaxRetries int
}

// OpenAIClient implements Client against any OpenAI-compatible API.
type OpenAIClient struct {
	chat       *openai.Client
	embeddings *openai.Client
	cfg        OpenAIConfig
	provider   string
}

// NewOpenAIClient builds a client for the configured endpoints.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	chatCfg := openai.DefaultConfig(cfg.APIKey)
	chatCfg.BaseURL = cfg.BaseURL

	embCfg := openai.DefaultConfig(cfg.EmbAPIKey)
	embCfg.BaseURL = cfg.EmbBaseURL

	return &OpenAIClient{
		chat:       openai.NewClientWithConfig(chatCfg),
		embeddings: openai.NewClientWithConfig(embCfg),
		cfg:        cfg,
		provider:   providerFromURL(cfg.BaseURL),
	}
}

func (c *OpenAIClient) Provider() string       { return c.provider }
func (c *OpenAIClient) Model() string          { return c.cfg.Model }
func (c *OpenAIClient) EmbeddingModel() string { return c.cfg.EmbModel }

// Chat issues one completion with bounded retries on transient failures.
func (c *OpenAIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	oaReq := c.buildRequest(req)

	var resp openai.ChatCompletionResponse
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		var err error
		resp, err = c.chat.CreateChatCompletion(callCtx, oaReq)
		if err != nil {
			if isPermanent(err) {
				return backoff.Permanent(err)
			}
			slog.Warn("chat completion failed, will retry", "model", c.cfg.Model, "error", err)
			return err
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.cfg.MaxRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion: empty choices from %s", c.provider)
	}

	choice := resp.Choices[0]
	return &ChatResponse{
		Content: choice.Message.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		},
		FinishReason: string(choice.FinishReason),
	}, nil
}

// ChatStream issues a streamed completion. The returned channel closes after
// the terminal chunk.
func (c *OpenAIClient) ChatStream(ctx context.Context, req ChatRequest) (<-chan StreamChunk, error) {
	stream, err := c.chat.CreateChatCompletionStream(ctx, c.buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("chat stream: %w", err)
	}

	out := make(chan StreamChunk)
	go func() {
		defer close(out)
		defer stream.Close()
		for {
			chunk, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				out <- StreamChunk{Err: err}
				return
			}
			if len(chunk.Choices) == 0 {
				continue
			}
			choice := chunk.Choices[0]
			out <- StreamChunk{
				Content:      choice.Delta.Content,
				FinishReason: string(choice.FinishReason),
			}
		}
	}()
	return out, nil
}

// Embed returns one vector per input text, batched in a single call.
func (c *OpenAIClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var resp openai.EmbeddingResponse
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		var err error
		resp, err = c.embeddings.CreateEmbeddings(callCtx, openai.EmbeddingRequestStrings{
			Input: texts,
			Model: openai.EmbeddingModel(c.cfg.EmbModel),
		})
		if err != nil {
			if isPermanent(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.cfg.MaxRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embeddings: got %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("embeddings: index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

func (c *OpenAIClient) buildRequest(req ChatRequest) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	oaReq := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONResponse {
		oaReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return oaReq
}

// isPermanent reports whether err will not be cured by retrying.
func isPermanent(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		// 408 and 429 are worth retrying; other 4xx are caller bugs.
		if apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500 &&
			apiErr.HTTPStatusCode != 408 && apiErr.HTTPStatusCode != 429 {
			return true
		}
	}
	return false
}

func providerFromURL(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return "openai-compatible"
	}
	host := u.Host
	switch {
	case strings.Contains(host, "dashscope"):
		return "qwen"
	case strings.Contains(host, "openai.com"):
		return "openai"
	case strings.Contains(host, "deepseek"):
		return "deepseek"
	default:
		return host
	}
}
