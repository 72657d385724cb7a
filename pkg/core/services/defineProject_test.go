package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phuture/fudashi/internal/config"
)

func TestDefineProject_CreatesProjectAndPaintsTemplates(t *testing.T) {
	store := &mockDatabase{}
	cfg := &config.Config{
		DatabaseURL: "postgres://test",
		OperatingTemplates: []config.OperatingTemplate{
			// 2026-03-02 is a Monday
			{RRule: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR", StartHour: 9, EndHour: 17},
		},
	}

	result, err := DefineProject(context.Background(), store, cfg, zap.NewNop(), "2026-03-02", "2026-03-08")
	require.NoError(t, err)

	assert.Equal(t, 7, result.Days)
	require.Len(t, store.insertedProjects, 1)
	assert.Equal(t, "2026-03-02", store.insertedProjects[0].StartDate)
	assert.Equal(t, "2026-03-08", store.insertedProjects[0].EndDate)
	assert.NotEmpty(t, result.Project.ID)

	// Five weekdays at eight hours each
	assert.Equal(t, 40, result.OpenHours)
	assert.Len(t, store.operatingHours, 40)

	days := make(map[int]int)
	for _, h := range store.operatingHours {
		days[h.DayIndex]++
		assert.GreaterOrEqual(t, h.Hour, 9)
		assert.Less(t, h.Hour, 17)
	}
	assert.Equal(t, map[int]int{0: 8, 1: 8, 2: 8, 3: 8, 4: 8}, days)
}

func TestDefineProject_NoTemplates(t *testing.T) {
	store := &mockDatabase{}
	cfg := &config.Config{DatabaseURL: "postgres://test"}

	result, err := DefineProject(context.Background(), store, cfg, zap.NewNop(), "2026-03-02", "2026-03-02")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Days)
	assert.Zero(t, result.OpenHours)
	assert.Empty(t, store.operatingHours)
}

func TestDefineProject_EndBeforeStartClampsToEmptyHorizon(t *testing.T) {
	store := &mockDatabase{}
	cfg := &config.Config{
		DatabaseURL: "postgres://test",
		OperatingTemplates: []config.OperatingTemplate{
			{RRule: "FREQ=DAILY", StartHour: 9, EndHour: 17},
		},
	}

	result, err := DefineProject(context.Background(), store, cfg, zap.NewNop(), "2026-03-08", "2026-03-02")
	require.NoError(t, err)

	assert.Zero(t, result.Days)
	assert.Zero(t, result.OpenHours)
	require.Len(t, store.insertedProjects, 1)
	assert.Empty(t, store.operatingHours)
}

func TestDefineProject_LongHorizonClampsToMax(t *testing.T) {
	store := &mockDatabase{}
	cfg := &config.Config{
		DatabaseURL: "postgres://test",
		OperatingTemplates: []config.OperatingTemplate{
			{RRule: "FREQ=DAILY", StartHour: 9, EndHour: 10},
		},
	}

	// 46 inclusive days requested, truncated to the 31-day horizon.
	result, err := DefineProject(context.Background(), store, cfg, zap.NewNop(), "2026-03-01", "2026-04-15")
	require.NoError(t, err)

	assert.Equal(t, 31, result.Days)
	assert.Equal(t, 31, result.OpenHours)
	for _, h := range store.operatingHours {
		assert.Less(t, h.DayIndex, 31)
	}
}

func TestDefineProject_InvalidDate(t *testing.T) {
	store := &mockDatabase{}
	cfg := &config.Config{DatabaseURL: "postgres://test"}

	_, err := DefineProject(context.Background(), store, cfg, zap.NewNop(), "not-a-date", "2026-03-02")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
}
