package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phuture/fudashi/pkg/core/scheduler"
	"github.com/phuture/fudashi/pkg/db"
)

func TestViewSchedule_RebuildsStoredRun(t *testing.T) {
	store := &mockDatabase{
		projects: []db.Project{{ID: "p1", StartDate: "2026-03-02", EndDate: "2026-03-04"}},
		scheduleShifts: []db.ScheduleShift{
			{ID: "sh1", ProjectID: "p1", Position: 0, StartDay: 0, StartHour: 9, EndDay: 0, EndHour: 17, Filled: true},
			{ID: "sh2", ProjectID: "p1", Position: 1, StartDay: 1, StartHour: 22, EndDay: 2, EndHour: 6, Filled: false},
		},
		scheduleAssigns: []db.ScheduleAssignment{
			{ID: "a1", ShiftID: "sh1", Position: 0, AgentID: "ag1", AgentName: "ALICE", StartTenths: 0, LengthTenths: 50, Classification: "flexible"},
			{ID: "a2", ShiftID: "sh1", Position: 1, AgentID: "ag2", AgentName: "BOB", StartTenths: 50, LengthTenths: 30, Classification: "limited"},
			{ID: "a3", ShiftID: "sh2", Position: 0, StartTenths: 0, LengthTenths: 80, Classification: "unknown", Unfilled: true},
		},
		scheduleAlerts: []db.ScheduleAlert{
			{ID: "al1", ProjectID: "p1", Position: 0, Severity: "warning", DayIndex: 1, Window: "10PM-6AM", Message: "Shift partially filled. Covered 0.0/8h"},
		},
	}

	result, err := ViewSchedule(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "p1", result.Project.ID)
	assert.Equal(t, 3, result.Days)
	require.Len(t, result.Result.Schedule.Days, 3)

	day0 := result.Result.Schedule.Days[0]
	require.Len(t, day0.Shifts, 1)
	first := day0.Shifts[0]
	assert.Equal(t, 8, first.DurationHours())
	assert.True(t, first.Filled)
	assert.False(t, first.Overnight())
	assert.Equal(t, []string{"⭐ ALICE (5.0h)", "⚠️ BOB (3.0h)"}, first.Details)

	day1 := result.Result.Schedule.Days[1]
	require.Len(t, day1.Shifts, 1)
	second := day1.Shifts[0]
	assert.True(t, second.Overnight())
	assert.Equal(t, 8, second.DurationHours())
	require.Len(t, second.Assignments, 1)
	assert.True(t, second.Assignments[0].Unfilled)
	assert.Equal(t, []string{"❌ UNFILLED"}, second.Details)

	require.Len(t, result.Result.Alerts, 1)
	assert.Equal(t, scheduler.AlertWarning, result.Result.Alerts[0].Severity)
}

func TestViewSchedule_UnfillableShiftLabel(t *testing.T) {
	store := &mockDatabase{
		projects: []db.Project{{ID: "p1", StartDate: "2026-03-02", EndDate: "2026-03-02"}},
		scheduleShifts: []db.ScheduleShift{
			{ID: "sh1", ProjectID: "p1", Position: 0, StartDay: 0, StartHour: 10, EndDay: 0, EndHour: 12, Filled: false},
		},
	}

	result, err := ViewSchedule(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	shift := result.Result.Schedule.Days[0].Shifts[0]
	assert.Empty(t, shift.Assignments)
	assert.Equal(t, []string{scheduler.UnfillableLabel}, shift.Details)
}

func TestViewSchedule_NoStoredRun(t *testing.T) {
	store := &mockDatabase{
		projects: []db.Project{{ID: "p1", StartDate: "2026-03-02", EndDate: "2026-03-02"}},
	}

	_, err := ViewSchedule(context.Background(), store, zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no schedule found")
}

func TestViewSchedule_NoProject(t *testing.T) {
	store := &mockDatabase{}

	_, err := ViewSchedule(context.Background(), store, zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no projects found")
}
