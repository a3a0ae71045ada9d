// Package llm defines the chat-completion and embedding client used by the
// merge pipeline, with an OpenAI-compatible implementation.
package llm

import (
	"context"
)

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage reports token consumption of a completed call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// ChatRequest describes one completion call.
type ChatRequest struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
	// JSONResponse requests a JSON-object response format. Output is still
	// validated by the parse chain; providers are not trusted to comply.
	JSONResponse bool
}

// ChatResponse is the non-streaming result.
type ChatResponse struct {
	Content      string
	Usage        Usage
	FinishReason string
}

// StreamChunk is one element of a streamed completion. A terminal chunk
// carries either a FinishReason or an Err.
type StreamChunk struct {
	Content      string
	FinishReason string
	Err          error
}

// Client produces chat completions and embeddings.
type Client interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	ChatStream(ctx context.Context, req ChatRequest) (<-chan StreamChunk, error)
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	Provider() string
	Model() string
	EmbeddingModel() string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
