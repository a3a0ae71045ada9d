package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/echoman-project/echoman/ent"
	"github.com/echoman-project/echoman/ent/llmjudgement"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicnode"
	"github.com/echoman-project/echoman/pkg/config"
	"github.com/echoman-project/echoman/pkg/llm"
	"github.com/echoman-project/echoman/pkg/tokens"
)

const (
	classifyPromptBudget     = 1500
	classifyCompletionBudget = 300
	classifyNodeLimit        = 5
	classifyTitleTokenCap    = 50
	classifySummaryTokenCap  = 80

	strongKeywordWeight = 0.15
	mediumKeywordWeight = 0.05

	lowSignalScore = 0.2
)

// classifyJudgement is the JSON shape of the LLM classification answer.
type classifyJudgement struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// ClassificationService assigns a category to a topic. Keyword rules decide
// first; low-confidence topics escalate to the LLM, and total failure lands
// on the current_affairs default.
type ClassificationService struct {
	client     *ent.Client
	llm        llm.Client
	acct       *tokens.Accountant
	settings   *config.Settings
	judgements *JudgementRecorder
}

func NewClassificationService(client *ent.Client, llmClient llm.Client, acct *tokens.Accountant, settings *config.Settings, judgements *JudgementRecorder) *ClassificationService {
	return &ClassificationService{
		client:     client,
		llm:        llmClient,
		acct:       acct,
		settings:   settings,
		judgements: judgements,
	}
}

// ClassifyTopic loads the topic with its nodes and persists the category
// decision.
func (s *ClassificationService) ClassifyTopic(ctx context.Context, runID string, topicID int) error {
	t, err := s.client.Topic.Get(ctx, topicID)
	if err != nil {
		return fmt.Errorf("topic %d: %w", topicID, err)
	}

	items, err := s.topicItems(ctx, topicID)
	if err != nil {
		return err
	}

	category, confidence, method := s.classify(ctx, runID, t, items)

	_, err = s.client.Topic.UpdateOneID(topicID).
		SetCategory(topic.Category(category)).
		SetCategoryConfidence(confidence).
		SetCategoryMethod(topic.CategoryMethod(method)).
		SetCategoryUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist category for topic %d: %w", topicID, err)
	}

	slog.Info("topic classified",
		"topic_id", topicID, "category", category, "confidence", confidence, "method", method)
	return nil
}

func (s *ClassificationService) topicItems(ctx context.Context, topicID int) ([]*ent.SourceItem, error) {
	items, err := s.client.SourceItem.Query().
		Where(sourceitem.HasTopicNodesWith(topicnode.TopicIDEQ(topicID))).
		Order(ent.Asc(sourceitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for topic %d: %w", topicID, err)
	}
	return items, nil
}

func (s *ClassificationService) classify(ctx context.Context, runID string, t *ent.Topic, items []*ent.SourceItem) (string, float64, string) {
	category, score := ruleClassify(classificationText(t, items), itemPlatforms(items))
	if score >= s.settings.RuleScoreThreshold {
		return category, score, "rule"
	}

	llmCategory, llmConfidence, ok := s.llmClassify(ctx, runID, t, items)
	if ok {
		return llmCategory, llmConfidence, "llm"
	}
	return "current_affairs", 0.3, "default"
}

// ruleClassify scores the three categories by keyword hits plus platform
// bias, normalizes the scores by the maximum, and returns the winner. A
// winner below lowSignalScore falls back to current_affairs.
func ruleClassify(text string, platforms []string) (string, float64) {
	scores := map[string]float64{
		"entertainment":   keywordScore(text, entertainmentStrong, entertainmentMedium),
		"current_affairs": keywordScore(text, currentAffairsStrong, currentAffairsMedium),
		"sports_esports":  keywordScore(text, sportsEsportsStrong, sportsEsportsMedium),
	}
	for _, platform := range platforms {
		for category, bias := range platformCategoryBias[platform] {
			scores[category] += bias
		}
	}

	var maxScore float64
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore > 0 {
		for category, score := range scores {
			scores[category] = score / maxScore
		}
	}

	best, bestScore := "current_affairs", 0.0
	for _, category := range []string{"entertainment", "current_affairs", "sports_esports"} {
		if scores[category] > bestScore {
			best, bestScore = category, scores[category]
		}
	}
	if bestScore < lowSignalScore {
		return "current_affairs", bestScore
	}
	return best, bestScore
}

func keywordScore(text string, strong, medium []string) float64 {
	var score float64
	for _, kw := range strong {
		if strings.Contains(text, kw) {
			score += strongKeywordWeight
		}
	}
	for _, kw := range medium {
		if strings.Contains(text, kw) {
			score += mediumKeywordWeight
		}
	}
	return score
}

func classificationText(t *ent.Topic, items []*ent.SourceItem) string {
	parts := []string{t.TitleKey}
	for _, item := range items {
		parts = append(parts, item.Title)
		if item.Summary != nil {
			parts = append(parts, *item.Summary)
		}
	}
	return strings.Join(parts, "\n")
}

func itemPlatforms(items []*ent.SourceItem) []string {
	seen := map[string]bool{}
	var platforms []string
	for _, item := range items {
		if !seen[item.Platform] {
			seen[item.Platform] = true
			platforms = append(platforms, item.Platform)
		}
	}
	return platforms
}

// llmClassify asks the model for a category. Parse failures fall back to
// scanning the raw response text before giving up.
func (s *ClassificationService) llmClassify(ctx context.Context, runID string, t *ent.Topic, items []*ent.SourceItem) (string, float64, bool) {
	prompt := s.buildClassifyPrompt(t, items)

	start := time.Now()
	resp, err := s.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature:  0.2,
		MaxTokens:    classifyCompletionBudget,
		JSONResponse: true,
	})
	if err != nil {
		s.judgements.Record(ctx, JudgementRecord{
			Type:         llmjudgement.JudgementTypeClassification,
			Status:       llmjudgement.StatusFailed,
			Request:      map[string]interface{}{"prompt": prompt, "topic_id": t.ID},
			ErrorMessage: err.Error(),
			Latency:      time.Since(start),
			Provider:     s.llm.Provider(),
			Model:        s.llm.Model(),
			RunID:        runID,
		})
		return "", 0, false
	}

	category, confidence, status := parseClassifyResponse(resp.Content)

	s.judgements.Record(ctx, JudgementRecord{
		Type:    llmjudgement.JudgementTypeClassification,
		Status:  status,
		Request: map[string]interface{}{"prompt": prompt, "topic_id": t.ID},
		Response: map[string]interface{}{
			"raw":        resp.Content,
			"category":   category,
			"confidence": confidence,
		},
		Latency:  time.Since(start),
		Usage:    resp.Usage,
		Provider: s.llm.Provider(),
		Model:    s.llm.Model(),
		RunID:    runID,
	})

	return category, confidence, category != ""
}

// parseClassifyResponse decodes the JSON answer, then falls back to plain
// substring extraction from the raw text.
func parseClassifyResponse(content string) (string, float64, llmjudgement.Status) {
	var j classifyJudgement
	if err := llm.ParseJSONObject(content, &j); err == nil && validCategory(j.Category) {
		return j.Category, j.Confidence, llmjudgement.StatusSuccess
	}

	lower := strings.ToLower(llm.StripThink(content))
	switch {
	case strings.Contains(lower, "entertainment"):
		return "entertainment", 0.5, llmjudgement.StatusFallback
	case strings.Contains(lower, "sports"):
		return "sports_esports", 0.5, llmjudgement.StatusFallback
	case strings.Contains(lower, "current_affairs"):
		return "current_affairs", 0.5, llmjudgement.StatusFallback
	}
	return "", 0, llmjudgement.StatusFailed
}

func validCategory(category string) bool {
	switch category {
	case "entertainment", "current_affairs", "sports_esports":
		return true
	}
	return false
}

func (s *ClassificationService) buildClassifyPrompt(t *ent.Topic, items []*ent.SourceItem) string {
	var nodeLines []string
	limit := len(items)
	if limit > classifyNodeLimit {
		limit = classifyNodeLimit
	}
	for _, item := range items[:limit] {
		line := "- " + s.acct.Truncate(item.Title, classifyTitleTokenCap, true)
		if item.Summary != nil && *item.Summary != "" {
			line += "：" + s.acct.Truncate(*item.Summary, classifySummaryTokenCap, true)
		}
		nodeLines = append(nodeLines, line)
	}

	prompt := fmt.Sprintf(`请对以下热点事件进行分类。

【事件标题】
%s

【相关报道】
%s

可选分类：
- entertainment：娱乐圈动态，包括明星八卦、影视综艺、演出颁奖等
- current_affairs：时事民生，包括政策法规、社会事件、财经舆情等
- sports_esports：体育电竞，包括体育赛事、电竞比赛、运动员动态等

要求输出 JSON 格式：
{
  "category": "entertainment" 或 "current_affairs" 或 "sports_esports",
  "confidence": 0.0-1.0,
  "reason": "分类理由"
}`, t.TitleKey, strings.Join(nodeLines, "\n"))

	if s.acct.Count(prompt) > classifyPromptBudget {
		prompt = s.acct.Truncate(prompt, classifyPromptBudget, true)
	}
	return prompt
}
