package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phuture/fudashi/pkg/db"
)

func TestFindLatestProject(t *testing.T) {
	projects := []db.Project{
		{ID: "old", StartDate: "2026-01-05", EndDate: "2026-01-11"},
		{ID: "new", StartDate: "2026-03-02", EndDate: "2026-03-08"},
		{ID: "mid", StartDate: "2026-02-02", EndDate: "2026-02-08"},
	}

	latest := findLatestProject(projects)
	require.NotNil(t, latest)
	assert.Equal(t, "new", latest.ID)
}

func TestFindLatestProject_Empty(t *testing.T) {
	assert.Nil(t, findLatestProject(nil))
}

func TestProjectDayCount(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2026-03-02", "2026-03-02", 1},
		{"one week", "2026-03-02", "2026-03-08", 7},
		{"full month clamped", "2026-03-01", "2026-04-15", 31},
		{"inverted range", "2026-03-08", "2026-03-02", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := projectDayCount(&db.Project{StartDate: tt.start, EndDate: tt.end})
			require.NoError(t, err)
			assert.Equal(t, tt.want, days)
		})
	}
}

func TestProjectDayCount_InvalidDate(t *testing.T) {
	_, err := projectDayCount(&db.Project{StartDate: "bad", EndDate: "2026-03-02"})
	assert.Error(t, err)
}

func TestBuildAvailabilityGrid(t *testing.T) {
	grid := buildAvailabilityGrid([]db.AvailabilityBlock{
		{AgentID: "a1", DayIndex: 0, Hour: 9},
		{AgentID: "a1", DayIndex: 0, Hour: 10},
	})

	assert.False(t, grid.Available("a1", 0, 9))
	assert.False(t, grid.Available("a1", 0, 10))
	assert.True(t, grid.Available("a1", 0, 11))
	assert.True(t, grid.Available("a2", 0, 9))
}

func TestToSchedulerAgents(t *testing.T) {
	agents := toSchedulerAgents([]db.Agent{
		{ID: "a1", Name: "ALICE", TargetHours: 37.5, MaxHours: 40},
	})

	require.Len(t, agents, 1)
	assert.Equal(t, 375, agents[0].Target)
	assert.Equal(t, 400, agents[0].Max)
}
