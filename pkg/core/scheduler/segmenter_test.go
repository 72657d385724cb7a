package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRange(grid *OperatingGrid, day, from, to int) {
	for hour := from; hour < to; hour++ {
		grid.SetOpen(day, hour, true)
	}
}

func TestSegmentOperatingWindows_EmptyGrid(t *testing.T) {
	shifts := SegmentOperatingWindows(NewOperatingGrid(), 7)
	assert.Empty(t, shifts)
}

func TestSegmentOperatingWindows_SingleWindow(t *testing.T) {
	grid := NewOperatingGrid()
	openRange(grid, 0, 9, 17)

	shifts := SegmentOperatingWindows(grid, 1)

	require.Len(t, shifts, 1)
	shift := shifts[0]
	assert.Equal(t, 0, shift.StartDay)
	assert.Equal(t, 9, shift.StartHour)
	assert.Equal(t, 0, shift.EndDay)
	assert.Equal(t, 17, shift.EndHour)
	assert.Equal(t, 8, shift.DurationHours())
	assert.Equal(t, Cell{Day: 0, Hour: 9}, shift.Cells[0])
	assert.Equal(t, Cell{Day: 0, Hour: 16}, shift.Cells[7])
}

func TestSegmentOperatingWindows_SplitWindows(t *testing.T) {
	grid := NewOperatingGrid()
	openRange(grid, 0, 6, 10)
	openRange(grid, 0, 14, 18)

	shifts := SegmentOperatingWindows(grid, 1)

	require.Len(t, shifts, 2)
	assert.Equal(t, 6, shifts[0].StartHour)
	assert.Equal(t, 10, shifts[0].EndHour)
	assert.Equal(t, 14, shifts[1].StartHour)
	assert.Equal(t, 18, shifts[1].EndHour)
}

func TestSegmentOperatingWindows_OvernightRun(t *testing.T) {
	// Open 22:00 day 0 through 05:59 day 1; the run merges across midnight.
	grid := NewOperatingGrid()
	openRange(grid, 0, 22, 24)
	openRange(grid, 1, 0, 6)

	shifts := SegmentOperatingWindows(grid, 2)

	require.Len(t, shifts, 1)
	shift := shifts[0]
	assert.Equal(t, 0, shift.StartDay)
	assert.Equal(t, 22, shift.StartHour)
	assert.Equal(t, 1, shift.EndDay)
	assert.Equal(t, 6, shift.EndHour)
	assert.Equal(t, 8, shift.DurationHours())
	assert.True(t, shift.Overnight())
}

func TestSegmentOperatingWindows_TrailingRunFlushed(t *testing.T) {
	grid := NewOperatingGrid()
	openRange(grid, 1, 20, 24)

	shifts := SegmentOperatingWindows(grid, 2)

	require.Len(t, shifts, 1)
	assert.Equal(t, 1, shifts[0].StartDay)
	assert.Equal(t, 20, shifts[0].StartHour)
	assert.Equal(t, 24, shifts[0].EndHour)
}

func TestSegmentOperatingWindows_HorizonBoundsScan(t *testing.T) {
	// Cells beyond the project horizon are never scanned.
	grid := NewOperatingGrid()
	openRange(grid, 3, 9, 17)

	shifts := SegmentOperatingWindows(grid, 3)
	assert.Empty(t, shifts)
}
