// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CategoryDayMetrics is the predicate function for categorydaymetrics builders.
type CategoryDayMetrics func(*sql.Selector)

// Embedding is the predicate function for embedding builders.
type Embedding func(*sql.Selector)

// IngestRun is the predicate function for ingestrun builders.
type IngestRun func(*sql.Selector)

// LLMJudgement is the predicate function for llmjudgement builders.
type LLMJudgement func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// SourceItem is the predicate function for sourceitem builders.
type SourceItem func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// TopicNode is the predicate function for topicnode builders.
type TopicNode func(*sql.Selector)

// TopicPeriodHeat is the predicate function for topicperiodheat builders.
type TopicPeriodHeat func(*sql.Selector)
