package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/echoman-project/echoman/ent"
	"github.com/echoman-project/echoman/ent/pipelinerun"
	"github.com/google/uuid"
)

// RunService maintains the audit rows that bound every pipeline stage
// invocation.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a run audit service.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// RunOutcome finalizes a pipeline run.
type RunOutcome struct {
	Status       pipelinerun.Status
	InputCount   int
	OutputCount  int
	SuccessCount int
	FailedCount  int
	Results      map[string]interface{}
	ErrorSummary string
}

// StartPipelineRun writes the running row for a stage invocation.
func (s *RunService) StartPipelineRun(ctx context.Context, stage pipelinerun.Stage, window string) (*ent.PipelineRun, error) {
	run, err := s.client.PipelineRun.Create().
		SetID(NewRunID(string(stage))).
		SetStage(stage).
		SetWindow(window).
		SetStatus(pipelinerun.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline run: %w", err)
	}
	slog.Info("pipeline run started", "run_id", run.ID, "stage", stage, "window", window)
	return run, nil
}

// FinishPipelineRun finalizes the run row. Finalization failures are logged,
// not propagated: the stage's real outcome should not be masked by audit
// bookkeeping.
func (s *RunService) FinishPipelineRun(ctx context.Context, run *ent.PipelineRun, outcome RunOutcome) {
	ended := time.Now()
	update := s.client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(outcome.Status).
		SetEndedAt(ended).
		SetDurationMs(int(ended.Sub(run.StartedAt).Milliseconds())).
		SetInputCount(outcome.InputCount).
		SetOutputCount(outcome.OutputCount).
		SetSuccessCount(outcome.SuccessCount).
		SetFailedCount(outcome.FailedCount)
	if outcome.Results != nil {
		update.SetResults(outcome.Results)
	}
	if outcome.ErrorSummary != "" {
		update.SetErrorSummary(outcome.ErrorSummary)
	}

	if _, err := update.Save(ctx); err != nil {
		slog.Error("failed to finalize pipeline run", "run_id", run.ID, "error", err)
		return
	}
	slog.Info("pipeline run finished",
		"run_id", run.ID,
		"stage", run.Stage,
		"status", outcome.Status,
		"input", outcome.InputCount,
		"output", outcome.OutputCount,
		"duration_ms", ended.Sub(run.StartedAt).Milliseconds())
}

// NewRunID builds a run identifier like "period_merge_a1b2c3d4e5f6".
func NewRunID(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%s", prefix, hex[:12])
}

// NewClusterID builds an opaque cluster identifier like "halfday_a1b2c3d4".
func NewClusterID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("halfday_%s", hex[:8])
}
