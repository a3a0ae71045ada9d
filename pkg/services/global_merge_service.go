package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/echoman-project/echoman/ent"
	"github.com/echoman-project/echoman/ent/embedding"
	"github.com/echoman-project/echoman/ent/llmjudgement"
	"github.com/echoman-project/echoman/ent/pipelinerun"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicperiodheat"
	"github.com/echoman-project/echoman/pkg/config"
	"github.com/echoman-project/echoman/pkg/llm"
	"github.com/echoman-project/echoman/pkg/tokens"
	"github.com/echoman-project/echoman/pkg/vector"
	"github.com/echoman-project/echoman/pkg/window"
	"golang.org/x/sync/errgroup"
)

// Stage 2 token budgets.
const (
	relationPromptBudget     = 2500
	relationCompletionBudget = 300
	candidateTitleTokenCap   = 200
)

const relationSystemPrompt = "你是专业的新闻事件分析助手，擅长判断事件之间的关联性。"

// relationJudgement is the JSON shape of the merge/new decision. The target
// id is loosely typed because models return ints, indexes, and strings.
type relationJudgement struct {
	Decision      string      `json:"decision"`
	TargetTopicID interface{} `json:"target_topic_id"`
	Confidence    float64     `json:"confidence"`
	Reason        string      `json:"reason"`
}

// topicCandidate is one retrieval hit offered to the relation judgement.
type topicCandidate struct {
	TopicID     int
	Title       string
	Similarity  float64
	LastActive  time.Time
	LengthHours float64
}

// GlobalMergeService runs stage 2: for every surviving cluster of the window
// it either attaches the cluster to an existing topic or seeds a new one,
// then maintains heat rows, categories, and summaries.
type GlobalMergeService struct {
	client     *ent.Client
	llm        llm.Client
	store      vector.Store
	acct       *tokens.Accountant
	settings   *config.Settings
	runs       *RunService
	judgements *JudgementRecorder
	classifier *ClassificationService
	summaries  *SummaryService
	loc        *time.Location
}

// NewGlobalMergeService wires the stage-2 service.
func NewGlobalMergeService(
	client *ent.Client,
	llmClient llm.Client,
	store vector.Store,
	acct *tokens.Accountant,
	settings *config.Settings,
	runs *RunService,
	judgements *JudgementRecorder,
	classifier *ClassificationService,
	summaries *SummaryService,
	loc *time.Location,
) *GlobalMergeService {
	return &GlobalMergeService{
		client:     client,
		llm:        llmClient,
		store:      store,
		acct:       acct,
		settings:   settings,
		runs:       runs,
		judgements: judgements,
		classifier: classifier,
		summaries:  summaries,
		loc:        loc,
	}
}

// Run executes stage 2 for the window. Clusters are processed sequentially;
// full summaries for new topics fan out afterwards with bounded concurrency.
func (s *GlobalMergeService) Run(ctx context.Context, w window.Window) error {
	run, err := s.runs.StartPipelineRun(ctx, pipelinerun.StageGlobalMerge, w.String())
	if err != nil {
		return err
	}

	clusters, err := s.loadClusters(ctx, w)
	if err != nil {
		s.runs.FinishPipelineRun(ctx, run, RunOutcome{
			Status:       pipelinerun.StatusFailed,
			ErrorSummary: err.Error(),
		})
		return fmt.Errorf("failed to load clusters: %w", err)
	}

	if len(clusters) == 0 {
		s.runs.FinishPipelineRun(ctx, run, RunOutcome{Status: pipelinerun.StatusSuccess})
		slog.Info("global merge: nothing pending", "window", w.String())
		return nil
	}

	var (
		mergeCount, newCount, failedClusters int
		incidents                            []string
		newTopicIDs                          []int
	)

	for clusterID, items := range clusters {
		if ctx.Err() != nil {
			incidents = append(incidents, "deadline expired before cluster "+clusterID)
			break
		}

		topicID, created, err := s.processCluster(ctx, run.ID, w, clusterID, items)
		if err != nil {
			failedClusters++
			incidents = append(incidents, fmt.Sprintf("cluster %s: %v", clusterID, err))
			slog.Error("cluster processing failed", "cluster_id", clusterID, "error", err)
			continue
		}
		if created {
			newCount++
			newTopicIDs = append(newTopicIDs, topicID)
		} else {
			mergeCount++
		}
	}

	s.generateFullSummaries(ctx, run.ID, newTopicIDs)

	status := pipelinerun.StatusSuccess
	if failedClusters > 0 || ctx.Err() != nil {
		status = pipelinerun.StatusPartial
	}
	if failedClusters == len(clusters) {
		status = pipelinerun.StatusFailed
	}

	s.runs.FinishPipelineRun(ctx, run, RunOutcome{
		Status:       status,
		InputCount:   len(clusters),
		OutputCount:  mergeCount + newCount,
		SuccessCount: mergeCount + newCount,
		FailedCount:  failedClusters,
		Results: map[string]interface{}{
			"merge_count": mergeCount,
			"new_count":   newCount,
			"incidents":   incidents,
		},
		ErrorSummary: strings.Join(incidents, "; "),
	})
	return nil
}

// loadClusters groups the window's pending_global items by cluster id,
// capped at BatchMaxClusters clusters per run.
func (s *GlobalMergeService) loadClusters(ctx context.Context, w window.Window) (map[string][]*ent.SourceItem, error) {
	items, err := s.client.SourceItem.Query().
		Where(
			sourceitem.WindowEQ(w.String()),
			sourceitem.StatusEQ(sourceitem.StatusPendingGlobal),
			sourceitem.ClusterIDNotNil(),
		).
		Order(ent.Asc(sourceitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	clusters := map[string][]*ent.SourceItem{}
	for _, item := range items {
		id := *item.ClusterID
		if len(clusters) >= s.settings.BatchMaxClusters {
			if _, ok := clusters[id]; !ok {
				continue
			}
		}
		clusters[id] = append(clusters[id], item)
	}
	return clusters, nil
}

// processCluster decides merge-vs-new for one cluster and applies it.
// Returns the target topic id and whether it was created by this cluster.
func (s *GlobalMergeService) processCluster(ctx context.Context, runID string, w window.Window, clusterID string, items []*ent.SourceItem) (int, bool, error) {
	rep := items[0]

	candidates := s.retrieveCandidates(ctx, rep)

	targetID := 0
	if len(candidates) > 0 {
		targetID = s.judgeRelation(ctx, runID, w, rep, candidates)
	}

	if targetID != 0 {
		if err := s.mergeToTopic(ctx, targetID, items, w); err != nil {
			return 0, false, err
		}
		s.afterAttach(ctx, runID, targetID, false)
		return targetID, false, nil
	}

	topicID, err := s.createTopic(ctx, rep, items, w)
	if err != nil {
		return 0, false, err
	}
	s.afterAttach(ctx, runID, topicID, true)
	return topicID, true, nil
}

// retrieveCandidates finds up to topK active, recently-active topics near the
// representative's vector. An unavailable index or an empty raw search falls
// back to the most recently active topics; candidates below the similarity
// floor are dropped without fallback.
func (s *GlobalMergeService) retrieveCandidates(ctx context.Context, rep *ent.SourceItem) []topicCandidate {
	vec, err := s.repVector(ctx, rep)
	if err != nil {
		slog.Warn("representative vector unavailable, using recent topics", "item_id", rep.ID, "error", err)
		return s.recentTopicCandidates(ctx)
	}

	matches, err := s.store.Search(ctx, vec, s.settings.CandidateTopK*2,
		map[string]interface{}{"object_type": "topic_summary"})
	if err != nil {
		slog.Warn("vector search failed, using recent topics", "error", err)
		return s.recentTopicCandidates(ctx)
	}
	if len(matches) == 0 {
		return s.recentTopicCandidates(ctx)
	}

	// Dedup by topic, keeping the best similarity per topic.
	bestByTopic := map[int]float64{}
	for _, m := range matches {
		id, ok := metadataInt(m.Metadata, "topic_id")
		if !ok {
			continue
		}
		if sim, seen := bestByTopic[id]; !seen || m.Similarity() > sim {
			bestByTopic[id] = m.Similarity()
		}
	}

	cutoff := time.Now().AddDate(0, 0, -s.settings.CandidateWindowDays)
	var candidates []topicCandidate
	for topicID, sim := range bestByTopic {
		if sim < s.settings.CandidateSimilarity {
			continue
		}
		t, err := s.client.Topic.Get(ctx, topicID)
		if err != nil {
			continue
		}
		if t.Status != topic.StatusActive || t.LastActive.Before(cutoff) {
			continue
		}
		candidates = append(candidates, topicCandidate{
			TopicID:     t.ID,
			Title:       t.TitleKey,
			Similarity:  sim,
			LastActive:  t.LastActive,
			LengthHours: t.LastActive.Sub(t.FirstSeen).Hours(),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})
	if len(candidates) > s.settings.CandidateTopK {
		candidates = candidates[:s.settings.CandidateTopK]
	}
	return candidates
}

// repVector loads the representative's vector from the index, falling back to
// the authoritative embeddings table.
func (s *GlobalMergeService) repVector(ctx context.Context, rep *ent.SourceItem) ([]float32, error) {
	vec, err := s.store.Get(ctx, vector.SourceItemID(rep.ID))
	if err == nil {
		return vec, nil
	}
	if !errors.Is(err, vector.ErrNotFound) {
		slog.Warn("vector index get failed, trying embeddings table", "item_id", rep.ID, "error", err)
	}

	row, err := s.client.Embedding.Query().
		Where(
			embedding.ObjectTypeEQ(embedding.ObjectTypeSourceItem),
			embedding.ObjectIDEQ(rep.ID),
		).
		Order(ent.Desc(embedding.FieldID)).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("no embedding for item %d: %w", rep.ID, err)
	}
	return row.Vector, nil
}

func (s *GlobalMergeService) recentTopicCandidates(ctx context.Context) []topicCandidate {
	cutoff := time.Now().AddDate(0, 0, -s.settings.CandidateWindowDays)
	topics, err := s.client.Topic.Query().
		Where(
			topic.StatusEQ(topic.StatusActive),
			topic.LastActiveGTE(cutoff),
		).
		Order(ent.Desc(topic.FieldLastActive)).
		Limit(s.settings.CandidateTopK).
		All(ctx)
	if err != nil {
		slog.Warn("recent topic fallback failed", "error", err)
		return nil
	}

	var candidates []topicCandidate
	for _, t := range topics {
		candidates = append(candidates, topicCandidate{
			TopicID:     t.ID,
			Title:       t.TitleKey,
			LastActive:  t.LastActive,
			LengthHours: t.LastActive.Sub(t.FirstSeen).Hours(),
		})
	}
	return candidates
}

// judgeRelation runs the merge/new decision. Returns the accepted target
// topic id, or 0 for "new". Call or parse failures fall back to "new".
func (s *GlobalMergeService) judgeRelation(ctx context.Context, runID string, w window.Window, rep *ent.SourceItem, candidates []topicCandidate) int {
	prompt := s.buildRelationPrompt(w, rep, candidates)

	start := time.Now()
	resp, err := s.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: relationSystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature:  0.2,
		MaxTokens:    relationCompletionBudget,
		JSONResponse: true,
	})
	if err != nil {
		slog.Warn("relation call failed, defaulting to new topic", "run_id", runID, "error", err)
		s.judgements.Record(ctx, JudgementRecord{
			Type:         llmjudgement.JudgementTypeTopicRelation,
			Status:       llmjudgement.StatusFailed,
			Request:      map[string]interface{}{"prompt": prompt, "item_id": rep.ID},
			ErrorMessage: err.Error(),
			Latency:      time.Since(start),
			Provider:     s.llm.Provider(),
			Model:        s.llm.Model(),
			RunID:        runID,
		})
		return 0
	}

	var j relationJudgement
	status := llmjudgement.StatusSuccess
	target := 0
	if parseErr := llm.ParseJSONObject(resp.Content, &j); parseErr != nil {
		status = llmjudgement.StatusFallback
	} else if j.Decision == "merge" && j.Confidence >= s.settings.MergeConfidence {
		if id, ok := resolveTargetTopicID(j.TargetTopicID, candidates); ok {
			target = id
		}
	}

	s.judgements.Record(ctx, JudgementRecord{
		Type:    llmjudgement.JudgementTypeTopicRelation,
		Status:  status,
		Request: map[string]interface{}{"prompt": prompt, "item_id": rep.ID},
		Response: map[string]interface{}{
			"raw":        resp.Content,
			"decision":   j.Decision,
			"target":     j.TargetTopicID,
			"confidence": j.Confidence,
			"reason":     j.Reason,
			"accepted":   target,
		},
		Latency:  time.Since(start),
		Usage:    resp.Usage,
		Provider: s.llm.Provider(),
		Model:    s.llm.Model(),
		RunID:    runID,
	})
	return target
}

func (s *GlobalMergeService) buildRelationPrompt(w window.Window, rep *ent.SourceItem, candidates []topicCandidate) string {
	title := s.acct.Truncate(rep.Title, itemTitleTokenCap, true)
	summary := "无"
	if rep.Summary != nil && *rep.Summary != "" {
		summary = s.acct.Truncate(*rep.Summary, itemSummaryTokenCap, true)
	}
	newEvent := fmt.Sprintf("标题: %s\n摘要: %s\n平台: %s\n日期: %s %s",
		title, summary, rep.Platform, w.Date, w.Period)

	var blocks []string
	for i, cand := range candidates {
		blocks = append(blocks, fmt.Sprintf(
			"【候选主题 %d】\n主题ID: %d\n标题: %s\n最后活跃: %s\n持续时长: %.1f 小时",
			i+1, cand.TopicID,
			s.acct.Truncate(cand.Title, candidateTitleTokenCap, true),
			cand.LastActive.Format("2006-01-02 15:04"),
			cand.LengthHours))
	}

	prompt := fmt.Sprintf(`判断新事件是否为已有主题的新进展：

【新事件】
%s

%s

要求输出 JSON 格式：
{
  "decision": "merge" 或 "new",
  "target_topic_id": 上述候选主题的真实主题ID（数字）,
  "confidence": 0.0-1.0,
  "reason": "判断理由"
}

判断标准：
1. 如果新事件是某个候选主题的后续进展、新报道，则选择 "merge"
2. 如果新事件与所有候选主题都无关，则选择 "new"
3. 时间间隔不超过7天
4. 主题一致性强`, newEvent, strings.Join(blocks, "\n"))

	if s.acct.Count(prompt) > relationPromptBudget {
		prompt = s.acct.Truncate(prompt, relationPromptBudget, true)
	}
	return prompt
}

// mergeToTopic attaches the cluster to an existing topic in one transaction.
func (s *GlobalMergeService) mergeToTopic(ctx context.Context, topicID int, items []*ent.SourceItem, w window.Window) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := tx.Topic.Get(ctx, topicID)
	if err != nil {
		return fmt.Errorf("target topic %d: %w", topicID, err)
	}

	now := time.Now()
	lastActive := t.LastActive
	for _, item := range items {
		if item.FetchedAt.After(lastActive) {
			lastActive = item.FetchedAt
		}
		if err := attachNode(ctx, tx, topicID, item, now); err != nil {
			return err
		}
	}

	meanHeat := meanNormalizedHeat(items)
	update := tx.Topic.UpdateOneID(topicID).
		SetLastActive(lastActive).
		AddIntensityTotal(len(items)).
		SetCurrentHeatNormalized(meanHeat).
		SetHeatPercentage(meanHeat * 100).
		SetUpdatedAt(now)
	if delta := interactionTotal(items); delta > 0 {
		update.AddInteractionTotal(delta)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update topic %d: %w", topicID, err)
	}

	if err := upsertPeriodHeat(ctx, tx, topicID, w, meanHeat, len(items), now); err != nil {
		return err
	}
	if err := markMerged(ctx, tx, items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit merge transaction: %w", err)
	}
	slog.Info("cluster merged into topic", "topic_id", topicID, "items", len(items))
	return nil
}

// createTopic seeds a new topic from the cluster in one transaction.
func (s *GlobalMergeService) createTopic(ctx context.Context, rep *ent.SourceItem, items []*ent.SourceItem, w window.Window) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin create transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	firstSeen, lastActive := items[0].FetchedAt, items[0].FetchedAt
	for _, item := range items[1:] {
		if item.FetchedAt.Before(firstSeen) {
			firstSeen = item.FetchedAt
		}
		if item.FetchedAt.After(lastActive) {
			lastActive = item.FetchedAt
		}
	}

	meanHeat := meanNormalizedHeat(items)
	create := tx.Topic.Create().
		SetTitleKey(rep.Title).
		SetFirstSeen(firstSeen).
		SetLastActive(lastActive).
		SetStatus(topic.StatusActive).
		SetIntensityTotal(len(items)).
		SetCurrentHeatNormalized(meanHeat).
		SetHeatPercentage(meanHeat * 100).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if total := interactionTotal(items); total > 0 {
		create.SetInteractionTotal(total)
	}
	t, err := create.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to create topic: %w", err)
	}

	for _, item := range items {
		if err := attachNode(ctx, tx, t.ID, item, now); err != nil {
			return 0, err
		}
	}
	if err := upsertPeriodHeat(ctx, tx, t.ID, w, meanHeat, len(items), now); err != nil {
		return 0, err
	}
	if err := markMerged(ctx, tx, items); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit create transaction: %w", err)
	}
	slog.Info("topic created", "topic_id", t.ID, "title_key", rep.Title, "items", len(items))
	return t.ID, nil
}

// afterAttach runs the derived updates. Their failures never roll back the
// attachment.
func (s *GlobalMergeService) afterAttach(ctx context.Context, runID string, topicID int, created bool) {
	if created {
		if err := s.summaries.EnsurePlaceholder(ctx, topicID); err != nil {
			slog.Error("placeholder summary failed", "topic_id", topicID, "error", err)
		}
	}

	if err := s.classifier.ClassifyTopic(ctx, runID, topicID); err != nil {
		slog.Error("classification failed", "topic_id", topicID, "error", err)
	}

	if !created {
		if err := s.summaries.MaybeIncremental(ctx, runID, topicID); err != nil {
			slog.Error("incremental summary failed", "topic_id", topicID, "error", err)
		}
	}
}

// generateFullSummaries fans out full-summary generation for the run's new
// topics. Each task owns an independent transaction scope inside the summary
// service, so one failure cannot poison its peers.
func (s *GlobalMergeService) generateFullSummaries(ctx context.Context, runID string, topicIDs []int) {
	if len(topicIDs) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.SummaryConcurrency)
	for _, id := range topicIDs {
		g.Go(func() error {
			if err := s.summaries.GenerateFull(gctx, runID, id); err != nil {
				slog.Error("full summary generation failed", "topic_id", id, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// attachNode links one item to the topic, tolerating replayed links.
func attachNode(ctx context.Context, tx *ent.Tx, topicID int, item *ent.SourceItem, now time.Time) error {
	_, err := tx.TopicNode.Create().
		SetTopicID(topicID).
		SetSourceItemID(item.ID).
		SetAppendedAt(now).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to attach item %d to topic %d: %w", item.ID, topicID, err)
	}
	return nil
}

// upsertPeriodHeat overwrites the (topic, date, period) row. Heat and count
// are recomputed from the full cluster, so replays converge.
func upsertPeriodHeat(ctx context.Context, tx *ent.Tx, topicID int, w window.Window, heat float64, count int, now time.Time) error {
	existing, err := tx.TopicPeriodHeat.Query().
		Where(
			topicperiodheat.TopicIDEQ(topicID),
			topicperiodheat.DateEQ(w.Date),
			topicperiodheat.PeriodEQ(topicperiodheat.Period(w.Period)),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = tx.TopicPeriodHeat.UpdateOneID(existing.ID).
			SetHeatNormalized(heat).
			SetHeatPercentage(heat * 100).
			SetSourceCount(count).
			SetUpdatedAt(now).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = tx.TopicPeriodHeat.Create().
			SetTopicID(topicID).
			SetDate(w.Date).
			SetPeriod(topicperiodheat.Period(w.Period)).
			SetHeatNormalized(heat).
			SetHeatPercentage(heat * 100).
			SetSourceCount(count).
			SetUpdatedAt(now).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert period heat for topic %d: %w", topicID, err)
	}
	return nil
}

// markMerged flips the cluster's items to merged, guarding the monotonic
// status machine: an item no longer pending_global signals a replay bug.
func markMerged(ctx context.Context, tx *ent.Tx, items []*ent.SourceItem) error {
	for _, item := range items {
		_, err := tx.SourceItem.UpdateOneID(item.ID).
			Where(sourceitem.StatusEQ(sourceitem.StatusPendingGlobal)).
			SetStatus(sourceitem.StatusMerged).
			Save(ctx)
		if ent.IsNotFound(err) {
			return fmt.Errorf("item %d: %w", item.ID, ErrStatusViolation)
		}
		if err != nil {
			return fmt.Errorf("failed to mark item %d merged: %w", item.ID, err)
		}
	}
	return nil
}

func meanNormalizedHeat(items []*ent.SourceItem) float64 {
	var sum float64
	for _, item := range items {
		if item.NormalizedHeat != nil {
			sum += *item.NormalizedHeat
		}
	}
	return sum / float64(len(items))
}

// interactionTotal sums the recognized interaction counters across items.
func interactionTotal(items []*ent.SourceItem) int64 {
	keys := []string{"repost", "comment", "like", "view", "favorite"}
	var total int64
	for _, item := range items {
		for _, key := range keys {
			if v, ok := item.Interactions[key]; ok {
				if f, ok := v.(float64); ok {
					total += int64(f)
				}
			}
		}
	}
	return total
}

// resolveTargetTopicID maps the model's loosely-typed target onto a real
// candidate: the raw id, a 1-based index into the candidate list, or a
// numeric substring of a string. Anything else is rejected.
func resolveTargetTopicID(raw interface{}, candidates []topicCandidate) (int, bool) {
	var n int
	switch v := raw.(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case string:
		digits := strings.TrimFunc(v, func(r rune) bool { return r < '0' || r > '9' })
		if digits == "" {
			return 0, false
		}
		parsed := 0
		for _, r := range digits {
			if r < '0' || r > '9' {
				return 0, false
			}
			parsed = parsed*10 + int(r-'0')
		}
		n = parsed
	default:
		return 0, false
	}

	for _, cand := range candidates {
		if cand.TopicID == n {
			return n, true
		}
	}
	// 1-based index into the candidate list.
	if n >= 1 && n <= len(candidates) {
		return candidates[n-1].TopicID, true
	}
	return 0, false
}

func metadataInt(meta map[string]interface{}, key string) (int, bool) {
	v, ok := meta[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
