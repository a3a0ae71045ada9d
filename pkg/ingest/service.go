package ingest

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/echoman-project/echoman/ent"
	"github.com/echoman-project/echoman/ent/ingestrun"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/pkg/config"
	"github.com/echoman-project/echoman/pkg/services"
	"github.com/echoman-project/echoman/pkg/window"
	"golang.org/x/sync/errgroup"
)

// platformResult accumulates one platform's outcome within a run.
type platformResult struct {
	Platform  string `json:"platform"`
	Status    string `json:"status"`
	Fetched   int    `json:"fetched"`
	New       int    `json:"new"`
	Duplicate int    `json:"duplicate"`
	Failed    int    `json:"failed"`
	Error     string `json:"error,omitempty"`
}

// Service fans out over the enabled platform scrapers, persists every
// fetched record as a pending item, and audits the run.
type Service struct {
	client   *ent.Client
	settings *config.Settings
	scrapers map[string]Scraper
	loc      *time.Location
}

func NewService(client *ent.Client, settings *config.Settings, scrapers map[string]Scraper, loc *time.Location) *Service {
	return &Service{client: client, settings: settings, scrapers: scrapers, loc: loc}
}

// Run executes one ingestion sweep over the enabled platforms. Platform
// failures degrade the run to partial; only a fully dark sweep is failed.
func (s *Service) Run(ctx context.Context) error {
	now := time.Now().In(s.loc)
	w := window.ForTime(now)
	runID := services.NewRunID("run")

	platforms := s.enabledPlatforms()

	run, err := s.client.IngestRun.Create().
		SetID(runID).
		SetStatus(ingestrun.StatusRunning).
		SetWindow(w.String()).
		SetStartedAt(now).
		SetPlatformCount(len(platforms)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create ingest run: %w", err)
	}

	var (
		mu      sync.Mutex
		results []platformResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.IngestConcurrency)
	for _, platform := range platforms {
		g.Go(func() error {
			result := s.runPlatform(gctx, platform, runID, w)
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Platform < results[j].Platform })
	s.finalize(ctx, run, results)
	return nil
}

func (s *Service) enabledPlatforms() []string {
	var platforms []string
	for _, p := range s.settings.EnabledPlatforms {
		if _, ok := s.scrapers[p]; ok {
			platforms = append(platforms, p)
		} else {
			slog.Warn("no scraper registered for platform", "platform", p)
		}
	}
	return platforms
}

func (s *Service) runPlatform(ctx context.Context, platform, runID string, w window.Window) platformResult {
	result := platformResult{Platform: platform, Status: "success"}

	records, err := s.scrapers[platform].FetchHotList(ctx, defaultListLimit)
	if err != nil {
		slog.Error("platform fetch failed", "platform", platform, "run_id", runID, "error", err)
		result.Status = "failed"
		result.Error = err.Error()
		return result
	}
	result.Fetched = len(records)

	for _, rec := range records {
		switch err := s.saveRecord(ctx, rec, runID, w); {
		case err == nil:
			result.New++
		case errors.Is(err, services.ErrAlreadyExists):
			result.Duplicate++
		default:
			result.Failed++
			slog.Warn("failed to save record", "platform", platform, "title", rec.Title, "error", err)
		}
	}
	if result.Failed > 0 && result.New == 0 {
		result.Status = "failed"
	}

	slog.Info("platform ingested",
		"platform", platform, "run_id", runID, "fetched", result.Fetched, "new", result.New)
	return result
}

// saveRecord writes one pending item. The dedup key is scoped to the run,
// so the same URL fetched by a later run yields a fresh row.
func (s *Service) saveRecord(ctx context.Context, rec Record, runID string, w window.Window) error {
	urlHash := md5Hex(rec.URL)
	create := s.client.SourceItem.Create().
		SetPlatform(rec.Platform).
		SetTitle(rec.Title).
		SetURL(rec.URL).
		SetURLHash(urlHash).
		SetContentHash(md5Hex(rec.Title + rec.Summary)).
		SetDedupKey(fmt.Sprintf("%s:%s:%s", rec.Platform, urlHash, runID)).
		SetFetchedAt(time.Now().In(s.loc)).
		SetWindow(w.String()).
		SetStatus(sourceitem.StatusPendingPeriod).
		SetRunID(runID)
	if rec.Summary != "" {
		create.SetSummary(rec.Summary)
	}
	if rec.PublishedAt != nil {
		create.SetPublishedAt(*rec.PublishedAt)
	}
	if rec.Interactions != nil {
		create.SetInteractions(rec.Interactions)
	}
	if rec.RawHeat != nil {
		create.SetRawHeat(*rec.RawHeat)
	}
	_, err := create.Save(ctx)
	if ent.IsConstraintError(err) {
		return fmt.Errorf("item %s already ingested in run %s: %w", urlHash, runID, services.ErrAlreadyExists)
	}
	return err
}

func (s *Service) finalize(ctx context.Context, run *ent.IngestRun, results []platformResult) {
	var (
		successPlatforms, itemCount, newCount int
		errs                                  []string
	)
	for _, r := range results {
		if r.Status == "success" {
			successPlatforms++
		} else if r.Error != "" {
			errs = append(errs, r.Platform+": "+r.Error)
		}
		itemCount += r.Fetched
		newCount += r.New
	}

	status := ingestrun.StatusSuccess
	switch {
	case successPlatforms == 0:
		status = ingestrun.StatusFailed
	case successPlatforms < len(results):
		status = ingestrun.StatusPartial
	}

	ended := time.Now().In(s.loc)
	update := s.client.IngestRun.UpdateOneID(run.ID).
		SetStatus(status).
		SetEndedAt(ended).
		SetDurationMs(int(ended.Sub(run.StartedAt).Milliseconds())).
		SetPlatformSuccess(successPlatforms).
		SetItemCount(itemCount).
		SetNewItemCount(newCount).
		SetPlatformResults(map[string]interface{}{"platforms": results})
	if len(errs) > 0 {
		update.SetErrorSummary(strings.Join(errs, "; "))
	}
	if _, err := update.Save(ctx); err != nil {
		slog.Error("failed to finalize ingest run", "run_id", run.ID, "error", err)
	}

	slog.Info("ingest run finished",
		"run_id", run.ID, "status", status, "items", itemCount, "new", newCount)
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
