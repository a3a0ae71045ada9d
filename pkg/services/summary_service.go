package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/echoman-project/echoman/ent"
	"github.com/echoman-project/echoman/ent/embedding"
	"github.com/echoman-project/echoman/ent/llmjudgement"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/ent/summary"
	"github.com/echoman-project/echoman/ent/topicnode"
	"github.com/echoman-project/echoman/pkg/config"
	"github.com/echoman-project/echoman/pkg/llm"
	"github.com/echoman-project/echoman/pkg/tokens"
	"github.com/echoman-project/echoman/pkg/vector"
)

const (
	summaryPromptBudget     = 4000
	summaryCompletionBudget = 1000

	// incrementalNodeLimit caps how many of the newest nodes feed an
	// incremental update prompt.
	incrementalNodeLimit = 5
)

// fullSummaryJudgement is the JSON shape of a full summary answer.
type fullSummaryJudgement struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

// incrementalJudgement is the JSON shape of an incremental update answer.
type incrementalJudgement struct {
	NeedsUpdate    bool     `json:"needs_update"`
	UpdatedSummary string   `json:"updated_summary"`
	NewKeyPoints   []string `json:"new_key_points"`
	ChangeReason   string   `json:"change_reason"`
}

// SummaryService maintains the rolling summary of each topic: a placeholder
// at creation, a full generation once the topic settles, and incremental
// updates as new nodes arrive.
type SummaryService struct {
	client     *ent.Client
	llm        llm.Client
	store      vector.Store
	acct       *tokens.Accountant
	settings   *config.Settings
	judgements *JudgementRecorder
}

func NewSummaryService(client *ent.Client, llmClient llm.Client, store vector.Store, acct *tokens.Accountant, settings *config.Settings, judgements *JudgementRecorder) *SummaryService {
	return &SummaryService{
		client:     client,
		llm:        llmClient,
		store:      store,
		acct:       acct,
		settings:   settings,
		judgements: judgements,
	}
}

// EnsurePlaceholder installs a placeholder summary for a topic that has none
// and indexes it so candidate retrieval can find the topic immediately. A
// topic whose summary lost its vector index write is re-indexed instead.
func (s *SummaryService) EnsurePlaceholder(ctx context.Context, topicID int) error {
	t, err := s.client.Topic.Get(ctx, topicID)
	if err != nil {
		return fmt.Errorf("topic %d: %w", topicID, err)
	}
	if t.SummaryID != nil {
		return s.reindexIfMissing(ctx, t)
	}

	content := fmt.Sprintf("事件「%s」的摘要正在生成中...", t.TitleKey)
	row, err := s.client.Summary.Create().
		SetTopicID(topicID).
		SetContent(content).
		SetKeyPoints([]string{}).
		SetMethod(summary.MethodPlaceholder).
		SetGeneratedAt(time.Now()).
		SetProvider(s.llm.Provider()).
		SetModel(s.llm.Model()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create placeholder summary: %w", err)
	}

	if _, err := s.client.Topic.UpdateOneID(topicID).SetSummaryID(row.ID).Save(ctx); err != nil {
		return fmt.Errorf("failed to link placeholder summary: %w", err)
	}

	// The placeholder carries no signal of its own, so index the title key.
	s.indexSummary(ctx, t, t.TitleKey)
	return nil
}

// reindexIfMissing closes the gap left by a failed indexSummary write.
// Index failures are non-fatal at write time, so the repair happens lazily
// the next time the topic passes through here.
func (s *SummaryService) reindexIfMissing(ctx context.Context, t *ent.Topic) error {
	exists, err := s.client.Embedding.Query().
		Where(
			embedding.ObjectTypeEQ(embedding.ObjectTypeTopicSummary),
			embedding.ObjectIDEQ(t.ID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check summary embedding for topic %d: %w", t.ID, err)
	}
	if exists {
		return nil
	}

	last, err := s.client.Summary.Get(ctx, *t.SummaryID)
	if err != nil {
		return fmt.Errorf("summary %d: %w", *t.SummaryID, err)
	}
	s.indexSummary(ctx, t, summaryIndexText(t, last))
	return nil
}

// summaryIndexText is the text a summary is embedded under: the bare title
// key for placeholders, title key plus content for generated summaries.
func summaryIndexText(t *ent.Topic, row *ent.Summary) string {
	if row.Method == summary.MethodPlaceholder {
		return t.TitleKey
	}
	return t.TitleKey + "\n" + row.Content
}

// GenerateFull builds a structured summary from scratch. On failure the
// previous summary (usually the placeholder) stays in place.
func (s *SummaryService) GenerateFull(ctx context.Context, runID string, topicID int) error {
	t, err := s.client.Topic.Get(ctx, topicID)
	if err != nil {
		return fmt.Errorf("topic %d: %w", topicID, err)
	}

	items, err := s.topicItemsChronological(ctx, topicID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("topic %d has no nodes: %w", topicID, ErrInvalidInput)
	}

	keyNodes := selectKeyNodes(items, s.settings.MaxContextNodes)
	prompt := s.buildFullPrompt(t, items, keyNodes)

	start := time.Now()
	resp, err := s.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature:  0.3,
		MaxTokens:    summaryCompletionBudget,
		JSONResponse: true,
	})
	if err != nil {
		s.judgements.Record(ctx, JudgementRecord{
			Type:         llmjudgement.JudgementTypeSummaryFull,
			Status:       llmjudgement.StatusFailed,
			Request:      map[string]interface{}{"prompt": prompt, "topic_id": topicID},
			ErrorMessage: err.Error(),
			Latency:      time.Since(start),
			Provider:     s.llm.Provider(),
			Model:        s.llm.Model(),
			RunID:        runID,
		})
		return fmt.Errorf("full summary call failed: %w", err)
	}

	var j fullSummaryJudgement
	parseErr := llm.ParseJSONObject(resp.Content, &j)

	status := llmjudgement.StatusSuccess
	if parseErr != nil || j.Summary == "" {
		status = llmjudgement.StatusFailed
	}
	s.judgements.Record(ctx, JudgementRecord{
		Type:    llmjudgement.JudgementTypeSummaryFull,
		Status:  status,
		Request: map[string]interface{}{"prompt": prompt, "topic_id": topicID},
		Response: map[string]interface{}{
			"raw":        resp.Content,
			"summary":    j.Summary,
			"key_points": j.KeyPoints,
		},
		Latency:  time.Since(start),
		Usage:    resp.Usage,
		Provider: s.llm.Provider(),
		Model:    s.llm.Model(),
		RunID:    runID,
	})
	if parseErr != nil {
		return fmt.Errorf("full summary parse failed: %w", parseErr)
	}
	if j.Summary == "" {
		return fmt.Errorf("full summary response was empty: %w", ErrInvalidInput)
	}

	if err := s.replaceSummary(ctx, t, j.Summary, j.KeyPoints, summary.MethodFull); err != nil {
		return err
	}
	slog.Info("full summary generated", "topic_id", topicID, "key_points", len(j.KeyPoints))
	return nil
}

// MaybeIncremental updates the summary when enough new nodes landed and
// enough time passed. A topic still carrying a placeholder gets a full
// generation instead.
func (s *SummaryService) MaybeIncremental(ctx context.Context, runID string, topicID int) error {
	t, err := s.client.Topic.Get(ctx, topicID)
	if err != nil {
		return fmt.Errorf("topic %d: %w", topicID, err)
	}
	if t.SummaryID == nil {
		if err := s.EnsurePlaceholder(ctx, topicID); err != nil {
			return err
		}
		return s.GenerateFull(ctx, runID, topicID)
	}

	last, err := s.client.Summary.Get(ctx, *t.SummaryID)
	if err != nil {
		return fmt.Errorf("summary %d: %w", *t.SummaryID, err)
	}
	if last.Method == summary.MethodPlaceholder {
		return s.GenerateFull(ctx, runID, topicID)
	}

	if time.Since(last.GeneratedAt) < s.settings.IncrementalMinInterval {
		return nil
	}

	newItems, err := s.itemsAppendedAfter(ctx, topicID, last.GeneratedAt)
	if err != nil {
		return err
	}
	if len(newItems) < s.settings.IncrementalMinNewNodes {
		return nil
	}

	prompt := s.buildIncrementalPrompt(last, newItems)

	start := time.Now()
	resp, err := s.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature:  0.3,
		MaxTokens:    summaryCompletionBudget,
		JSONResponse: true,
	})
	if err != nil {
		s.judgements.Record(ctx, JudgementRecord{
			Type:         llmjudgement.JudgementTypeSummaryIncremental,
			Status:       llmjudgement.StatusFailed,
			Request:      map[string]interface{}{"prompt": prompt, "topic_id": topicID},
			ErrorMessage: err.Error(),
			Latency:      time.Since(start),
			Provider:     s.llm.Provider(),
			Model:        s.llm.Model(),
			RunID:        runID,
		})
		return fmt.Errorf("incremental summary call failed: %w", err)
	}

	var j incrementalJudgement
	parseErr := llm.ParseJSONObject(resp.Content, &j)

	status := llmjudgement.StatusSuccess
	if parseErr != nil {
		status = llmjudgement.StatusFailed
	}
	s.judgements.Record(ctx, JudgementRecord{
		Type:    llmjudgement.JudgementTypeSummaryIncremental,
		Status:  status,
		Request: map[string]interface{}{"prompt": prompt, "topic_id": topicID},
		Response: map[string]interface{}{
			"raw":           resp.Content,
			"needs_update":  j.NeedsUpdate,
			"change_reason": j.ChangeReason,
		},
		Latency:  time.Since(start),
		Usage:    resp.Usage,
		Provider: s.llm.Provider(),
		Model:    s.llm.Model(),
		RunID:    runID,
	})
	if parseErr != nil {
		return fmt.Errorf("incremental summary parse failed: %w", parseErr)
	}
	if !j.NeedsUpdate || j.UpdatedSummary == "" {
		return nil
	}

	keyPoints := append(append([]string{}, last.KeyPoints...), j.NewKeyPoints...)
	if err := s.replaceSummary(ctx, t, j.UpdatedSummary, keyPoints, summary.MethodIncremental); err != nil {
		return err
	}
	slog.Info("incremental summary applied", "topic_id", topicID, "reason", j.ChangeReason)
	return nil
}

// replaceSummary writes a new summary version, repoints the topic, and
// refreshes both embedding stores.
func (s *SummaryService) replaceSummary(ctx context.Context, t *ent.Topic, content string, keyPoints []string, method summary.Method) error {
	if keyPoints == nil {
		keyPoints = []string{}
	}
	row, err := s.client.Summary.Create().
		SetTopicID(t.ID).
		SetContent(content).
		SetKeyPoints(keyPoints).
		SetMethod(method).
		SetGeneratedAt(time.Now()).
		SetProvider(s.llm.Provider()).
		SetModel(s.llm.Model()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}
	if _, err := s.client.Topic.UpdateOneID(t.ID).SetSummaryID(row.ID).Save(ctx); err != nil {
		return fmt.Errorf("failed to link summary %d: %w", row.ID, err)
	}

	s.indexSummary(ctx, t, t.TitleKey+"\n"+content)
	return nil
}

// indexSummary embeds the text and upserts both the audit row and the vector
// index entry for the topic. Indexing failures are logged, not propagated;
// the summary row is already authoritative.
func (s *SummaryService) indexSummary(ctx context.Context, t *ent.Topic, text string) {
	vecs, err := s.llm.Embed(ctx, []string{text})
	provider := s.llm.Provider()
	if err != nil || len(vecs) != 1 {
		slog.Warn("summary embedding failed, using mock vector", "topic_id", t.ID, "error", err)
		vecs = llm.RandomUnitVectors(1, s.settings.EmbeddingDimension)
		provider = llm.MockProvider
	}

	_, err = s.client.Embedding.Create().
		SetObjectType(embedding.ObjectTypeTopicSummary).
		SetObjectID(t.ID).
		SetProvider(provider).
		SetModel(s.llm.EmbeddingModel()).
		SetVector(vecs[0]).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		slog.Error("failed to persist summary embedding", "topic_id", t.ID, "error", err)
	}

	err = s.store.Upsert(ctx, []vector.Entry{{
		ID:     vector.TopicSummaryID(t.ID),
		Vector: vecs[0],
		Metadata: map[string]interface{}{
			"object_type": "topic_summary",
			"topic_id":    t.ID,
			"title_key":   truncateRunes(t.TitleKey, 200),
		},
		Document: truncateRunes(text, 500),
	}})
	if err != nil {
		slog.Error("failed to upsert summary into vector index", "topic_id", t.ID, "error", err)
	}
}

func (s *SummaryService) topicItemsChronological(ctx context.Context, topicID int) ([]*ent.SourceItem, error) {
	items, err := s.client.SourceItem.Query().
		Where(sourceitem.HasTopicNodesWith(topicnode.TopicIDEQ(topicID))).
		Order(ent.Asc(sourceitem.FieldFetchedAt), ent.Asc(sourceitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for topic %d: %w", topicID, err)
	}
	return items, nil
}

func (s *SummaryService) itemsAppendedAfter(ctx context.Context, topicID int, after time.Time) ([]*ent.SourceItem, error) {
	items, err := s.client.SourceItem.Query().
		Where(sourceitem.HasTopicNodesWith(
			topicnode.TopicIDEQ(topicID),
			topicnode.AppendedAtGT(after),
		)).
		Order(ent.Asc(sourceitem.FieldFetchedAt), ent.Asc(sourceitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load new items for topic %d: %w", topicID, err)
	}
	return items, nil
}

// selectKeyNodes picks the earliest node, the two with the most interactions,
// and the five newest, deduplicated and returned in chronological order.
// items must already be sorted by fetch time.
func selectKeyNodes(items []*ent.SourceItem, max int) []*ent.SourceItem {
	if len(items) <= max {
		return items
	}

	picked := map[int]bool{items[0].ID: true}

	byInteractions := make([]*ent.SourceItem, len(items))
	copy(byInteractions, items)
	sort.SliceStable(byInteractions, func(i, j int) bool {
		return itemInteractions(byInteractions[i]) > itemInteractions(byInteractions[j])
	})
	for i := 0; i < 2 && i < len(byInteractions); i++ {
		picked[byInteractions[i].ID] = true
	}

	for i := len(items) - 5; i < len(items); i++ {
		if i >= 0 {
			picked[items[i].ID] = true
		}
	}

	var selected []*ent.SourceItem
	for _, item := range items {
		if picked[item.ID] {
			selected = append(selected, item)
		}
	}
	if len(selected) > max {
		selected = selected[:max]
	}
	return selected
}

func itemInteractions(item *ent.SourceItem) int64 {
	return interactionTotal([]*ent.SourceItem{item})
}

// newestItems keeps the last n entries of a chronologically ordered slice.
func newestItems(items []*ent.SourceItem, n int) []*ent.SourceItem {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

func (s *SummaryService) buildFullPrompt(t *ent.Topic, items []*ent.SourceItem, keyNodes []*ent.SourceItem) string {
	platforms := itemPlatforms(items)

	var lines []string
	for _, item := range keyNodes {
		line := fmt.Sprintf("- [%s] %s", item.FetchedAt.Format("01-02 15:04"),
			s.acct.Truncate(item.Title, itemTitleTokenCap, true))
		if item.Summary != nil && *item.Summary != "" {
			line += "：" + s.acct.Truncate(*item.Summary, itemSummaryTokenCap, true)
		}
		lines = append(lines, line)
	}

	prompt := fmt.Sprintf(`请为以下热点事件生成结构化摘要。

【事件基本信息】
标题: %s
首次发现: %s
最后活跃: %s
涉及平台: %s
节点总数: %d

【关键节点】
%s

要求：
1. 用150-300字概述事件脉络
2. 提取3-5个关键要点
3. 保持客观中立，不添加推测

输出 JSON 格式：
{
  "summary": "事件概述",
  "key_points": ["要点1", "要点2"]
}`,
		t.TitleKey,
		t.FirstSeen.Format("2006-01-02 15:04"),
		t.LastActive.Format("2006-01-02 15:04"),
		strings.Join(platforms, "、"),
		len(items),
		strings.Join(lines, "\n"))

	if s.acct.Count(prompt) > summaryPromptBudget {
		prompt = s.acct.Truncate(prompt, summaryPromptBudget, true)
	}
	return prompt
}

func (s *SummaryService) buildIncrementalPrompt(last *ent.Summary, newItems []*ent.SourceItem) string {
	var lines []string
	for _, item := range newestItems(newItems, incrementalNodeLimit) {
		line := fmt.Sprintf("- [%s] %s", item.FetchedAt.Format("01-02 15:04"),
			s.acct.Truncate(item.Title, itemTitleTokenCap, true))
		if item.Summary != nil && *item.Summary != "" {
			line += "：" + s.acct.Truncate(*item.Summary, itemSummaryTokenCap, true)
		}
		lines = append(lines, line)
	}

	prompt := fmt.Sprintf(`请基于当前摘要和新增进展，更新事件摘要。

【当前摘要】
%s

【新增进展】
%s

要求：
1. 如果新增进展带来实质变化，更新摘要并说明变化原因
2. 如果只是重复报道，标记无需更新
3. 保持150-300字

输出 JSON 格式：
{
  "needs_update": true 或 false,
  "updated_summary": "更新后的摘要",
  "new_key_points": ["新增要点"],
  "change_reason": "变化原因"
}`, last.Content, strings.Join(lines, "\n"))

	if s.acct.Count(prompt) > summaryPromptBudget {
		prompt = s.acct.Truncate(prompt, summaryPromptBudget, true)
	}
	return prompt
}
