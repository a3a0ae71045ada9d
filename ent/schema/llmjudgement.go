package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMJudgement holds the schema definition for the LLMJudgement entity.
// Audit row for every LLM call made by the pipeline, including raw output so
// parse fallbacks stay debuggable.
type LLMJudgement struct {
	ent.Schema
}

// Fields of the LLMJudgement.
func (LLMJudgement) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("judgement_type").
			Values("same_event", "topic_relation", "classification", "summary_full", "summary_incremental"),
		field.Enum("status").
			Values("success", "failed", "fallback"),
		field.JSON("request", map[string]interface{}{}).
			Optional(),
		field.JSON("response", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("latency_ms").
			Optional().
			Nillable(),
		field.Int("tokens_prompt").
			Optional().
			Nillable(),
		field.Int("tokens_completion").
			Optional().
			Nillable(),
		field.String("provider"),
		field.String("model"),
		field.String("run_id").
			Optional().
			Comment("Pipeline run that issued the call"),
		field.Time("created_at").
			Immutable(),
	}
}

// Indexes of the LLMJudgement.
func (LLMJudgement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("judgement_type", "created_at"),
		index.Fields("run_id"),
	}
}
