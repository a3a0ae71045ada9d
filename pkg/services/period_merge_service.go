package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/echoman-project/echoman/ent"
	"github.com/echoman-project/echoman/ent/embedding"
	"github.com/echoman-project/echoman/ent/llmjudgement"
	"github.com/echoman-project/echoman/ent/pipelinerun"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/pkg/config"
	"github.com/echoman-project/echoman/pkg/llm"
	"github.com/echoman-project/echoman/pkg/tokens"
	"github.com/echoman-project/echoman/pkg/vector"
	"github.com/echoman-project/echoman/pkg/window"
)

// Stage 1 token budgets.
const (
	sameEventPromptBudget     = 2000
	sameEventCompletionBudget = 300
	itemTitleTokenCap         = 80
	itemSummaryTokenCap       = 150
)

const sameEventSystemPrompt = "你是专业的新闻事件分析助手，擅长判断不同新闻是否报道同一事件。"

// sameEventJudgement is the JSON shape the confirmation call must return.
type sameEventJudgement struct {
	IsSameEvent bool    `json:"is_same_event"`
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason"`
}

// PeriodMergeService de-duplicates one window: embeds the pending items,
// clusters them, confirms multi-item clusters with the LLM, and flips each
// item to pending_global or discarded.
type PeriodMergeService struct {
	client     *ent.Client
	llm        llm.Client
	store      vector.Store
	acct       *tokens.Accountant
	settings   *config.Settings
	runs       *RunService
	judgements *JudgementRecorder
}

// NewPeriodMergeService wires the stage-1 service.
func NewPeriodMergeService(
	client *ent.Client,
	llmClient llm.Client,
	store vector.Store,
	acct *tokens.Accountant,
	settings *config.Settings,
	runs *RunService,
	judgements *JudgementRecorder,
) *PeriodMergeService {
	return &PeriodMergeService{
		client:     client,
		llm:        llmClient,
		store:      store,
		acct:       acct,
		settings:   settings,
		runs:       runs,
		judgements: judgements,
	}
}

// Run executes stage 1 for the window. Embedding and LLM failures degrade
// (random vectors, singleton splits) and the run still counts as success;
// store failures fail the run.
func (s *PeriodMergeService) Run(ctx context.Context, w window.Window) error {
	run, err := s.runs.StartPipelineRun(ctx, pipelinerun.StagePeriodMerge, w.String())
	if err != nil {
		return err
	}

	items, err := s.client.SourceItem.Query().
		Where(
			sourceitem.WindowEQ(w.String()),
			sourceitem.StatusEQ(sourceitem.StatusPendingPeriod),
		).
		Order(ent.Asc(sourceitem.FieldID)).
		All(ctx)
	if err != nil {
		s.runs.FinishPipelineRun(ctx, run, RunOutcome{
			Status:       pipelinerun.StatusFailed,
			ErrorSummary: err.Error(),
		})
		return fmt.Errorf("failed to load pending items: %w", err)
	}

	if len(items) == 0 {
		s.runs.FinishPipelineRun(ctx, run, RunOutcome{Status: pipelinerun.StatusSuccess})
		slog.Info("period merge: empty window", "window", w.String())
		return nil
	}

	vectors, degraded := s.vectorizeItems(ctx, run.ID, items)

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	candidates := greedyCluster(vectors, titles,
		s.settings.VectorSimilarityThreshold, s.settings.TitleJaccardThreshold)

	final, llmCalls := s.confirmClusters(ctx, run.ID, items, candidates)

	kept, discarded, clusterStats, err := s.applyClusters(ctx, items, final)
	if err != nil {
		s.runs.FinishPipelineRun(ctx, run, RunOutcome{
			Status:       pipelinerun.StatusFailed,
			InputCount:   len(items),
			ErrorSummary: err.Error(),
		})
		return fmt.Errorf("failed to apply clusters: %w", err)
	}

	s.runs.FinishPipelineRun(ctx, run, RunOutcome{
		Status:       pipelinerun.StatusSuccess,
		InputCount:   len(items),
		OutputCount:  kept,
		SuccessCount: kept,
		FailedCount:  discarded,
		Results: map[string]interface{}{
			"candidate_clusters": len(candidates),
			"final_clusters":     len(final),
			"items_kept":         kept,
			"items_discarded":    discarded,
			"llm_calls":          llmCalls,
			"embedding_degraded": degraded,
			"cluster_heat":       clusterStats,
		},
	})
	return nil
}

// vectorizeItems embeds title+summary for every item, persisting the vectors
// in both the embeddings table and the vector index. On endpoint failure the
// items get random unit vectors so the stage can proceed.
func (s *PeriodMergeService) vectorizeItems(ctx context.Context, runID string, items []*ent.SourceItem) ([][]float32, bool) {
	texts := make([]string, len(items))
	for i, item := range items {
		text := item.Title
		if item.Summary != nil && *item.Summary != "" {
			text += " " + *item.Summary
		}
		texts[i] = text
	}

	provider := s.llm.Provider()
	vectors, err := s.llm.Embed(ctx, texts)
	degraded := false
	if err != nil {
		slog.Warn("embedding call failed, degrading to random vectors",
			"run_id", runID, "items", len(items), "error", err)
		vectors = llm.RandomUnitVectors(len(items), s.settings.EmbeddingDimension)
		provider = llm.MockProvider
		degraded = true
	}

	entries := make([]vector.Entry, 0, len(items))
	for i, item := range items {
		row, err := s.client.Embedding.Create().
			SetObjectType(embedding.ObjectTypeSourceItem).
			SetObjectID(item.ID).
			SetProvider(provider).
			SetModel(s.llm.EmbeddingModel()).
			SetVector(vectors[i]).
			SetCreatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			slog.Error("failed to persist embedding row", "item_id", item.ID, "error", err)
			continue
		}
		if _, err := s.client.SourceItem.UpdateOneID(item.ID).
			SetEmbeddingID(row.ID).
			Save(ctx); err != nil {
			slog.Error("failed to link embedding to item", "item_id", item.ID, "error", err)
		}

		entries = append(entries, vector.Entry{
			ID:     vector.SourceItemID(item.ID),
			Vector: vectors[i],
			Metadata: map[string]interface{}{
				"object_type": "source_item",
				"object_id":   item.ID,
				"platform":    item.Platform,
				"title":       truncateRunes(item.Title, 200),
			},
			Document: truncateRunes(texts[i], 500),
		})
	}

	if err := s.store.Upsert(ctx, entries); err != nil {
		// The index is derived; the authoritative rows are already written.
		slog.Warn("vector index upsert failed", "run_id", runID, "error", err)
	}

	return vectors, degraded
}

// confirmClusters asks the LLM whether each multi-item candidate reports one
// event. Clusters failing confirmation, parsing, or the call itself split
// into singletons. Returns the final clusters and the LLM call count.
func (s *PeriodMergeService) confirmClusters(ctx context.Context, runID string, items []*ent.SourceItem, candidates [][]int) ([][]int, int) {
	var final [][]int
	calls := 0

	for _, cluster := range candidates {
		if len(cluster) < 2 {
			final = append(final, cluster)
			continue
		}

		calls++
		keep := s.judgeSameEvent(ctx, runID, items, cluster)
		if keep {
			final = append(final, cluster)
			continue
		}
		for _, idx := range cluster {
			final = append(final, []int{idx})
		}
	}
	return final, calls
}

func (s *PeriodMergeService) judgeSameEvent(ctx context.Context, runID string, items []*ent.SourceItem, cluster []int) bool {
	prompt := s.buildSameEventPrompt(items, cluster)

	start := time.Now()
	resp, err := s.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: sameEventSystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature:  0.2,
		MaxTokens:    sameEventCompletionBudget,
		JSONResponse: true,
	})
	if err != nil {
		slog.Warn("same-event call failed, splitting cluster",
			"run_id", runID, "cluster_size", len(cluster), "error", err)
		s.judgements.Record(ctx, JudgementRecord{
			Type:         llmjudgement.JudgementTypeSameEvent,
			Status:       llmjudgement.StatusFailed,
			Request:      map[string]interface{}{"prompt": prompt, "cluster_size": len(cluster)},
			ErrorMessage: err.Error(),
			Latency:      time.Since(start),
			Provider:     s.llm.Provider(),
			Model:        s.llm.Model(),
			RunID:        runID,
		})
		return false
	}

	var j sameEventJudgement
	status := llmjudgement.StatusSuccess
	keep := false
	if parseErr := llm.ParseJSONObject(resp.Content, &j); parseErr != nil {
		slog.Warn("same-event output unparseable, splitting cluster",
			"run_id", runID, "error", parseErr)
		status = llmjudgement.StatusFallback
	} else {
		keep = j.IsSameEvent && j.Confidence >= s.settings.SameEventConfidence
	}

	s.judgements.Record(ctx, JudgementRecord{
		Type:    llmjudgement.JudgementTypeSameEvent,
		Status:  status,
		Request: map[string]interface{}{"prompt": prompt, "cluster_size": len(cluster)},
		Response: map[string]interface{}{
			"raw":           resp.Content,
			"is_same_event": j.IsSameEvent,
			"confidence":    j.Confidence,
			"reason":        j.Reason,
			"kept":          keep,
		},
		Latency:  time.Since(start),
		Usage:    resp.Usage,
		Provider: s.llm.Provider(),
		Model:    s.llm.Model(),
		RunID:    runID,
	})
	return keep
}

func (s *PeriodMergeService) buildSameEventPrompt(items []*ent.SourceItem, cluster []int) string {
	var lines []string
	for i, idx := range cluster {
		item := items[idx]
		title := s.acct.Truncate(item.Title, itemTitleTokenCap, true)
		summary := "无"
		if item.Summary != nil && *item.Summary != "" {
			summary = s.acct.Truncate(*item.Summary, itemSummaryTokenCap, true)
		}
		lines = append(lines, fmt.Sprintf(
			"[Item %d] 标题: %s  摘要: %s  平台: %s  时间: %s",
			i+1, title, summary, item.Platform, item.FetchedAt.Format("15:04")))
	}

	prompt := fmt.Sprintf(`判断以下新闻条目是否为同一事件的不同报道（半日内采集）：

%s

要求输出 JSON 格式：
{
  "is_same_event": true/false,
  "confidence": 0.0-1.0,
  "reason": "判断理由"
}`, strings.Join(lines, "\n"))

	if s.acct.Count(prompt) > sameEventPromptBudget {
		prompt = s.acct.Truncate(prompt, sameEventPromptBudget, true)
	}
	return prompt
}

// applyClusters assigns cluster ids, occurrence counts, and final statuses in
// one transaction. Clusters of at least MinOccurrence survive to stage 2.
func (s *PeriodMergeService) applyClusters(ctx context.Context, items []*ent.SourceItem, clusters [][]int) (kept, discarded int, stats []map[string]interface{}, err error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to begin stage transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, cluster := range clusters {
		clusterID := NewClusterID()
		size := len(cluster)
		status := sourceitem.StatusDiscarded
		if size >= s.settings.MinOccurrence {
			status = sourceitem.StatusPendingGlobal
		}

		var heatSum, heatMax float64
		for _, idx := range cluster {
			item := items[idx]
			if item.NormalizedHeat != nil {
				heatSum += *item.NormalizedHeat
				if *item.NormalizedHeat > heatMax {
					heatMax = *item.NormalizedHeat
				}
			}
			if _, err := tx.SourceItem.UpdateOneID(item.ID).
				SetClusterID(clusterID).
				SetOccurrenceCount(size).
				SetStatus(status).
				Save(ctx); err != nil {
				return 0, 0, nil, fmt.Errorf("failed to update item %d: %w", item.ID, err)
			}
		}

		if status == sourceitem.StatusPendingGlobal {
			kept += size
			stats = append(stats, map[string]interface{}{
				"cluster_id": clusterID,
				"size":       size,
				"heat_avg":   heatSum / float64(size),
				"heat_max":   heatMax,
			})
		} else {
			discarded += size
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, nil, fmt.Errorf("failed to commit stage transaction: %w", err)
	}
	return kept, discarded, stats, nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
