package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/echoman-project/echoman/ent"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/pkg/config"
	"github.com/echoman-project/echoman/pkg/window"
)

// HeatService rescales raw platform heat scores into one weighted
// distribution per window that sums to 1.0. Recomputation is idempotent.
type HeatService struct {
	client   *ent.Client
	settings *config.Settings
}

// NewHeatService creates a heat normalization service.
func NewHeatService(client *ent.Client, settings *config.Settings) *HeatService {
	return &HeatService{client: client, settings: settings}
}

// NormalizeWindow normalizes every pending item of the window and persists
// the result. Item status is not touched. Returns the item count.
func (s *HeatService) NormalizeWindow(ctx context.Context, w window.Window) (int, error) {
	items, err := s.client.SourceItem.Query().
		Where(
			sourceitem.WindowEQ(w.String()),
			sourceitem.StatusEQ(sourceitem.StatusPendingPeriod),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending items for %s: %w", w, err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	normalized := normalizeHeat(items, s.settings.Weight)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin heat transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range items {
		if _, err := tx.SourceItem.UpdateOneID(item.ID).
			SetNormalizedHeat(normalized[item.ID]).
			Save(ctx); err != nil {
			return 0, fmt.Errorf("failed to persist normalized heat for item %d: %w", item.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit heat transaction: %w", err)
	}

	slog.Info("heat normalized", "window", w.String(), "items", len(items))
	return len(items), nil
}

// normalizeHeat computes the normalized heat per item id.
//
// Per platform: min-max over the non-null raw scores into [0,1]; null scores
// inside a scored platform get 0.5; platforms with no scores at all get 0.5
// throughout; an all-equal platform also gets 0.5 (min-max is undefined).
// Each value is then weighted by platformWeight/sum(weights of platforms
// present) and finally divided by the window total so the window sums to 1.0.
func normalizeHeat(items []*ent.SourceItem, weight func(string) float64) map[int]float64 {
	byPlatform := map[string][]*ent.SourceItem{}
	for _, item := range items {
		byPlatform[item.Platform] = append(byPlatform[item.Platform], item)
	}

	var weightSum float64
	for platform := range byPlatform {
		weightSum += weight(platform)
	}

	values := make(map[int]float64, len(items))
	for platform, group := range byPlatform {
		minRaw, maxRaw, scored := rawHeatRange(group)

		for _, item := range group {
			var v float64
			switch {
			case !scored || item.RawHeat == nil:
				v = 0.5
			case maxRaw == minRaw:
				v = 0.5
			default:
				v = (*item.RawHeat - minRaw) / (maxRaw - minRaw)
			}
			values[item.ID] = v * weight(platform) / weightSum
		}
	}

	var total float64
	for _, v := range values {
		total += v
	}
	if total > 0 {
		for id := range values {
			values[id] /= total
		}
	}
	return values
}

func rawHeatRange(group []*ent.SourceItem) (minRaw, maxRaw float64, scored bool) {
	for _, item := range group {
		if item.RawHeat == nil {
			continue
		}
		if !scored {
			minRaw, maxRaw, scored = *item.RawHeat, *item.RawHeat, true
			continue
		}
		if *item.RawHeat < minRaw {
			minRaw = *item.RawHeat
		}
		if *item.RawHeat > maxRaw {
			maxRaw = *item.RawHeat
		}
	}
	return minRaw, maxRaw, scored
}
