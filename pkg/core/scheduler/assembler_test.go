package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_EveryDayPresent(t *testing.T) {
	shifts := []*Shift{
		{StartDay: 1, StartHour: 9, EndDay: 1, EndHour: 17},
	}

	result := Assemble(4, shifts, nil)

	require.Len(t, result.Schedule.Days, 4)
	for day, daySchedule := range result.Schedule.Days {
		assert.Equal(t, day, daySchedule.Day)
		assert.NotNil(t, daySchedule.Shifts)
	}
	assert.Empty(t, result.Schedule.Days[0].Shifts)
	assert.Len(t, result.Schedule.Days[1].Shifts, 1)
	assert.Empty(t, result.Schedule.Days[2].Shifts)
	assert.NotNil(t, result.Alerts)
	assert.Empty(t, result.Alerts)
}

func TestAssemble_GroupsByStartDayInOrder(t *testing.T) {
	morning := &Shift{StartDay: 2, StartHour: 6, EndDay: 2, EndHour: 10}
	evening := &Shift{StartDay: 2, StartHour: 18, EndDay: 2, EndHour: 23}
	overnight := &Shift{StartDay: 0, StartHour: 22, EndDay: 1, EndHour: 6}

	result := Assemble(3, []*Shift{overnight, morning, evening}, nil)

	// Overnight shifts group under their start day.
	require.Len(t, result.Schedule.Days[0].Shifts, 1)
	assert.Same(t, overnight, result.Schedule.Days[0].Shifts[0])
	assert.Empty(t, result.Schedule.Days[1].Shifts)

	require.Len(t, result.Schedule.Days[2].Shifts, 2)
	assert.Same(t, morning, result.Schedule.Days[2].Shifts[0])
	assert.Same(t, evening, result.Schedule.Days[2].Shifts[1])
}

func TestAssemble_ZeroDayHorizon(t *testing.T) {
	result := Assemble(0, nil, nil)
	assert.Empty(t, result.Schedule.Days)
	assert.Empty(t, result.Alerts)
}

func TestAssemble_PreservesAlertOrder(t *testing.T) {
	alerts := []Alert{
		{Severity: AlertError, Day: 0, Message: "first"},
		{Severity: AlertWarning, Day: 2, Message: "second"},
	}

	result := Assemble(3, nil, alerts)

	require.Len(t, result.Alerts, 2)
	assert.Equal(t, "first", result.Alerts[0].Message)
	assert.Equal(t, "second", result.Alerts[1].Message)
}
