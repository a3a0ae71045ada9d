package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/echoman-project/echoman/ent"
	"github.com/echoman-project/echoman/ent/categorydaymetrics"
	"github.com/echoman-project/echoman/ent/pipelinerun"
	"github.com/echoman-project/echoman/ent/topic"
)

// categoryStats accumulates one (date, category) rollup.
type categoryStats struct {
	TopicCount       int
	ActiveTopicCount int
	IntensitySum     int
	DurationSum      float64
	MaxDuration      float64
}

// MetricsService recomputes the per-category daily rollups. The job is a
// full overwrite per (date, category), so reruns converge.
type MetricsService struct {
	client *ent.Client
	runs   *RunService
	loc    *time.Location
}

func NewMetricsService(client *ent.Client, runs *RunService, loc *time.Location) *MetricsService {
	return &MetricsService{client: client, runs: runs, loc: loc}
}

// RecomputeDay rebuilds the rollups for one calendar day.
func (s *MetricsService) RecomputeDay(ctx context.Context, day time.Time) error {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)
	date := dayStart.Format("2006-01-02")

	run, err := s.runs.StartPipelineRun(ctx, pipelinerun.StageCategoryMetrics, date)
	if err != nil {
		return err
	}

	topics, err := s.client.Topic.Query().
		Where(
			topic.CategoryNotNil(),
			topic.FirstSeenLT(dayEnd),
			topic.LastActiveGTE(dayStart),
		).
		All(ctx)
	if err != nil {
		s.runs.FinishPipelineRun(ctx, run, RunOutcome{
			Status:       pipelinerun.StatusFailed,
			ErrorSummary: err.Error(),
		})
		return fmt.Errorf("failed to load topics for %s: %w", date, err)
	}

	stats := map[topic.Category]*categoryStats{}
	for _, t := range topics {
		st := stats[*t.Category]
		if st == nil {
			st = &categoryStats{}
			stats[*t.Category] = st
		}
		st.TopicCount++
		if t.Status == topic.StatusActive {
			st.ActiveTopicCount++
		}
		st.IntensitySum += t.IntensityTotal
		hours := t.LastActive.Sub(t.FirstSeen).Hours()
		st.DurationSum += hours
		if hours > st.MaxDuration {
			st.MaxDuration = hours
		}
	}

	var failed int
	for category, st := range stats {
		if err := s.upsertDayMetrics(ctx, date, category, st); err != nil {
			failed++
			slog.Error("failed to upsert day metrics", "date", date, "category", category, "error", err)
		}
	}

	status := pipelinerun.StatusSuccess
	if failed > 0 {
		status = pipelinerun.StatusPartial
	}
	s.runs.FinishPipelineRun(ctx, run, RunOutcome{
		Status:       status,
		InputCount:   len(topics),
		OutputCount:  len(stats) - failed,
		SuccessCount: len(stats) - failed,
		FailedCount:  failed,
		Results: map[string]interface{}{
			"date":       date,
			"categories": len(stats),
		},
	})

	slog.Info("category day metrics recomputed", "date", date, "categories", len(stats), "topics", len(topics))
	return nil
}

func (s *MetricsService) upsertDayMetrics(ctx context.Context, date string, category topic.Category, st *categoryStats) error {
	avg := 0.0
	if st.TopicCount > 0 {
		avg = st.DurationSum / float64(st.TopicCount)
	}
	now := time.Now()

	existing, err := s.client.CategoryDayMetrics.Query().
		Where(
			categorydaymetrics.DateEQ(date),
			categorydaymetrics.CategoryEQ(categorydaymetrics.Category(category)),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = s.client.CategoryDayMetrics.UpdateOneID(existing.ID).
			SetTopicCount(st.TopicCount).
			SetActiveTopicCount(st.ActiveTopicCount).
			SetAvgDurationHours(avg).
			SetMaxDurationHours(st.MaxDuration).
			SetIntensitySum(st.IntensitySum).
			SetUpdatedAt(now).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = s.client.CategoryDayMetrics.Create().
			SetDate(date).
			SetCategory(categorydaymetrics.Category(category)).
			SetTopicCount(st.TopicCount).
			SetActiveTopicCount(st.ActiveTopicCount).
			SetAvgDurationHours(avg).
			SetMaxDurationHours(st.MaxDuration).
			SetIntensitySum(st.IntensitySum).
			SetUpdatedAt(now).
			Save(ctx)
	}
	return err
}
