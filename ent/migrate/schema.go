// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoryDayMetricsColumns holds the columns for the "category_day_metrics" table.
	CategoryDayMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "date", Type: field.TypeString},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"entertainment", "current_affairs", "sports_esports"}},
		{Name: "topic_count", Type: field.TypeInt, Default: 0},
		{Name: "active_topic_count", Type: field.TypeInt, Default: 0},
		{Name: "avg_duration_hours", Type: field.TypeFloat64, Nullable: true},
		{Name: "max_duration_hours", Type: field.TypeFloat64, Nullable: true},
		{Name: "intensity_sum", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CategoryDayMetricsTable holds the schema information for the "category_day_metrics" table.
	CategoryDayMetricsTable = &schema.Table{
		Name:       "category_day_metrics",
		Columns:    CategoryDayMetricsColumns,
		PrimaryKey: []*schema.Column{CategoryDayMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "categorydaymetrics_date_category",
				Unique:  true,
				Columns: []*schema.Column{CategoryDayMetricsColumns[1], CategoryDayMetricsColumns[2]},
			},
		},
	}
	// EmbeddingsColumns holds the columns for the "embeddings" table.
	EmbeddingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "object_type", Type: field.TypeEnum, Enums: []string{"source_item", "topic_summary"}},
		{Name: "object_id", Type: field.TypeInt},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "vector", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EmbeddingsTable holds the schema information for the "embeddings" table.
	EmbeddingsTable = &schema.Table{
		Name:       "embeddings",
		Columns:    EmbeddingsColumns,
		PrimaryKey: []*schema.Column{EmbeddingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "embedding_object_type_object_id",
				Unique:  false,
				Columns: []*schema.Column{EmbeddingsColumns[1], EmbeddingsColumns[2]},
			},
		},
	}
	// IngestRunsColumns holds the columns for the "ingest_runs" table.
	IngestRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "success", "partial", "failed"}, Default: "running"},
		{Name: "window", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "platform_count", Type: field.TypeInt, Default: 0},
		{Name: "platform_success", Type: field.TypeInt, Default: 0},
		{Name: "item_count", Type: field.TypeInt, Default: 0},
		{Name: "new_item_count", Type: field.TypeInt, Default: 0},
		{Name: "platform_results", Type: field.TypeJSON, Nullable: true},
		{Name: "error_summary", Type: field.TypeString, Nullable: true},
	}
	// IngestRunsTable holds the schema information for the "ingest_runs" table.
	IngestRunsTable = &schema.Table{
		Name:       "ingest_runs",
		Columns:    IngestRunsColumns,
		PrimaryKey: []*schema.Column{IngestRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{IngestRunsColumns[3]},
			},
			{
				Name:    "ingestrun_window",
				Unique:  false,
				Columns: []*schema.Column{IngestRunsColumns[2]},
			},
		},
	}
	// LlmJudgementsColumns holds the columns for the "llm_judgements" table.
	LlmJudgementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "judgement_type", Type: field.TypeEnum, Enums: []string{"same_event", "topic_relation", "classification", "summary_full", "summary_incremental"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failed", "fallback"}},
		{Name: "request", Type: field.TypeJSON, Nullable: true},
		{Name: "response", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_prompt", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_completion", Type: field.TypeInt, Nullable: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmJudgementsTable holds the schema information for the "llm_judgements" table.
	LlmJudgementsTable = &schema.Table{
		Name:       "llm_judgements",
		Columns:    LlmJudgementsColumns,
		PrimaryKey: []*schema.Column{LlmJudgementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmjudgement_judgement_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmJudgementsColumns[1], LlmJudgementsColumns[12]},
			},
			{
				Name:    "llmjudgement_run_id",
				Unique:  false,
				Columns: []*schema.Column{LlmJudgementsColumns[11]},
			},
		},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"period_merge", "global_merge", "category_metrics"}},
		{Name: "window", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "success", "partial", "failed"}, Default: "running"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "input_count", Type: field.TypeInt, Default: 0},
		{Name: "output_count", Type: field.TypeInt, Default: 0},
		{Name: "success_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "error_summary", Type: field.TypeString, Nullable: true},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_stage_started_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[1], PipelineRunsColumns[4]},
			},
			{
				Name:    "pipelinerun_window",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[2]},
			},
		},
	}
	// SourceItemsColumns holds the columns for the "source_items" table.
	SourceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "platform", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString},
		{Name: "url_hash", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "dedup_key", Type: field.TypeString, Unique: true},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "fetched_at", Type: field.TypeTime},
		{Name: "interactions", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_heat", Type: field.TypeFloat64, Nullable: true},
		{Name: "normalized_heat", Type: field.TypeFloat64, Nullable: true},
		{Name: "window", Type: field.TypeString},
		{Name: "cluster_id", Type: field.TypeString, Nullable: true},
		{Name: "occurrence_count", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_period", "pending_global", "merged", "discarded"}, Default: "pending_period"},
		{Name: "embedding_id", Type: field.TypeInt, Nullable: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SourceItemsTable holds the schema information for the "source_items" table.
	SourceItemsTable = &schema.Table{
		Name:       "source_items",
		Columns:    SourceItemsColumns,
		PrimaryKey: []*schema.Column{SourceItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sourceitem_window_status",
				Unique:  false,
				Columns: []*schema.Column{SourceItemsColumns[13], SourceItemsColumns[16]},
			},
			{
				Name:    "sourceitem_cluster_id",
				Unique:  false,
				Columns: []*schema.Column{SourceItemsColumns[14]},
			},
			{
				Name:    "sourceitem_platform_fetched_at",
				Unique:  false,
				Columns: []*schema.Column{SourceItemsColumns[1], SourceItemsColumns[9]},
			},
			{
				Name:    "sourceitem_run_id",
				Unique:  false,
				Columns: []*schema.Column{SourceItemsColumns[18]},
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "key_points", Type: field.TypeJSON, Nullable: true},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"full", "incremental", "placeholder"}},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeInt},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summaries_topics_summaries",
				Columns:    []*schema.Column{SummariesColumns[7]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "summary_topic_id_generated_at",
				Unique:  false,
				Columns: []*schema.Column{SummariesColumns[7], SummariesColumns[4]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title_key", Type: field.TypeString},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_active", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "ended"}, Default: "active"},
		{Name: "intensity_total", Type: field.TypeInt, Default: 0},
		{Name: "interaction_total", Type: field.TypeInt64, Nullable: true},
		{Name: "current_heat_normalized", Type: field.TypeFloat64, Nullable: true},
		{Name: "heat_percentage", Type: field.TypeFloat64, Nullable: true},
		{Name: "category", Type: field.TypeEnum, Nullable: true, Enums: []string{"entertainment", "current_affairs", "sports_esports"}},
		{Name: "category_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "category_method", Type: field.TypeEnum, Nullable: true, Enums: []string{"rule", "llm", "default", "manual"}},
		{Name: "category_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "summary_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_status_last_active",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[4], TopicsColumns[3]},
			},
			{
				Name:    "topic_category",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[9]},
			},
		},
	}
	// TopicNodesColumns holds the columns for the "topic_nodes" table.
	TopicNodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "appended_at", Type: field.TypeTime},
		{Name: "source_item_id", Type: field.TypeInt},
		{Name: "topic_id", Type: field.TypeInt},
	}
	// TopicNodesTable holds the schema information for the "topic_nodes" table.
	TopicNodesTable = &schema.Table{
		Name:       "topic_nodes",
		Columns:    TopicNodesColumns,
		PrimaryKey: []*schema.Column{TopicNodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "topic_nodes_source_items_topic_nodes",
				Columns:    []*schema.Column{TopicNodesColumns[2]},
				RefColumns: []*schema.Column{SourceItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "topic_nodes_topics_nodes",
				Columns:    []*schema.Column{TopicNodesColumns[3]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "topicnode_topic_id_source_item_id",
				Unique:  true,
				Columns: []*schema.Column{TopicNodesColumns[3], TopicNodesColumns[2]},
			},
			{
				Name:    "topicnode_source_item_id",
				Unique:  false,
				Columns: []*schema.Column{TopicNodesColumns[2]},
			},
		},
	}
	// TopicPeriodHeatsColumns holds the columns for the "topic_period_heats" table.
	TopicPeriodHeatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "date", Type: field.TypeString},
		{Name: "period", Type: field.TypeEnum, Enums: []string{"AM", "PM", "EVE"}},
		{Name: "heat_normalized", Type: field.TypeFloat64},
		{Name: "heat_percentage", Type: field.TypeFloat64, Nullable: true},
		{Name: "source_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "topic_id", Type: field.TypeInt},
	}
	// TopicPeriodHeatsTable holds the schema information for the "topic_period_heats" table.
	TopicPeriodHeatsTable = &schema.Table{
		Name:       "topic_period_heats",
		Columns:    TopicPeriodHeatsColumns,
		PrimaryKey: []*schema.Column{TopicPeriodHeatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "topic_period_heats_topics_period_heats",
				Columns:    []*schema.Column{TopicPeriodHeatsColumns[7]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "topicperiodheat_topic_id_date_period",
				Unique:  true,
				Columns: []*schema.Column{TopicPeriodHeatsColumns[7], TopicPeriodHeatsColumns[1], TopicPeriodHeatsColumns[2]},
			},
			{
				Name:    "topicperiodheat_date_period",
				Unique:  false,
				Columns: []*schema.Column{TopicPeriodHeatsColumns[1], TopicPeriodHeatsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoryDayMetricsTable,
		EmbeddingsTable,
		IngestRunsTable,
		LlmJudgementsTable,
		PipelineRunsTable,
		SourceItemsTable,
		SummariesTable,
		TopicsTable,
		TopicNodesTable,
		TopicPeriodHeatsTable,
	}
)

func init() {
	SummariesTable.ForeignKeys[0].RefTable = TopicsTable
	TopicNodesTable.ForeignKeys[0].RefTable = SourceItemsTable
	TopicNodesTable.ForeignKeys[1].RefTable = TopicsTable
	TopicPeriodHeatsTable.ForeignKeys[0].RefTable = TopicsTable
}
