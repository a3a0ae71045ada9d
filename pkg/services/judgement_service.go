package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/echoman-project/echoman/ent"
	"github.com/echoman-project/echoman/ent/llmjudgement"
	"github.com/echoman-project/echoman/pkg/llm"
)

// JudgementRecorder writes the audit row for every pipeline LLM call.
// Recording is best-effort: a failed audit write never fails the caller.
type JudgementRecorder struct {
	client *ent.Client
}

// NewJudgementRecorder creates a judgement recorder.
func NewJudgementRecorder(client *ent.Client) *JudgementRecorder {
	return &JudgementRecorder{client: client}
}

// JudgementRecord captures one LLM call.
type JudgementRecord struct {
	Type         llmjudgement.JudgementType
	Status       llmjudgement.Status
	Request      map[string]interface{}
	Response     map[string]interface{}
	ErrorMessage string
	Latency      time.Duration
	Usage        llm.Usage
	Provider     string
	Model        string
	RunID        string
}

// Record persists the judgement row.
func (r *JudgementRecorder) Record(ctx context.Context, rec JudgementRecord) {
	create := r.client.LLMJudgement.Create().
		SetJudgementType(rec.Type).
		SetStatus(rec.Status).
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetRunID(rec.RunID).
		SetLatencyMs(int(rec.Latency.Milliseconds())).
		SetTokensPrompt(rec.Usage.PromptTokens).
		SetTokensCompletion(rec.Usage.CompletionTokens).
		SetCreatedAt(time.Now())
	if rec.Request != nil {
		create.SetRequest(rec.Request)
	}
	if rec.Response != nil {
		create.SetResponse(rec.Response)
	}
	if rec.ErrorMessage != "" {
		create.SetErrorMessage(rec.ErrorMessage)
	}

	if _, err := create.Save(ctx); err != nil {
		slog.Error("failed to record llm judgement", "type", rec.Type, "error", err)
	}
}
