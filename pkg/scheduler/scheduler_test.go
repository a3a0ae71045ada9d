package scheduler

import (
	"testing"

	"github.com/echoman-project/echoman/pkg/services"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCronSpecsParse(t *testing.T) {
	specs := []string{
		"0 8,10,12,14,16,18,20,22 * * *",
		"15 12,18,22 * * *",
		"30 12,18,22 * * *",
		"0 1 * * *",
	}
	for _, spec := range specs {
		_, err := cron.ParseStandard(spec)
		require.NoError(t, err, spec)
	}
}

func TestAcquireRelease(t *testing.T) {
	s := &Scheduler{running: map[string]bool{}}

	require.NoError(t, s.acquire("period_merge@2026-08-26_PM"))
	err := s.acquire("period_merge@2026-08-26_PM")
	assert.ErrorIs(t, err, services.ErrStageInProgress, "second acquire must be rejected")
	assert.NoError(t, s.acquire("period_merge@2026-08-26_EVE"), "a different window is independent")

	s.release("period_merge@2026-08-26_PM")
	assert.NoError(t, s.acquire("period_merge@2026-08-26_PM"), "released key can be reacquired")
}
