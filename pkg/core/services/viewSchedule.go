package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/phuture/fudashi/pkg/core/model"
	"github.com/phuture/fudashi/pkg/core/scheduler"
	"github.com/phuture/fudashi/pkg/db"
)

// ViewScheduleResult is the stored run rebuilt for rendering
type ViewScheduleResult struct {
	Project *model.Project
	Days    int
	Result  *scheduler.Result
}

// ViewScheduleStore defines the database operations needed to view the
// stored schedule
type ViewScheduleStore interface {
	GetProjects(ctx context.Context) ([]db.Project, error)
	GetScheduleShifts(ctx context.Context) ([]db.ScheduleShift, error)
	GetScheduleAssignments(ctx context.Context) ([]db.ScheduleAssignment, error)
	GetScheduleAlerts(ctx context.Context) ([]db.ScheduleAlert, error)
}

// ViewSchedule rebuilds the latest persisted run from its stored records.
// Assignment labels are derived at render time rather than read from storage.
func ViewSchedule(ctx context.Context, database ViewScheduleStore, logger *zap.Logger) (*ViewScheduleResult, error) {
	projects, err := database.GetProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects found - please define a project first")
	}
	project := findLatestProject(projects)

	days, err := projectDayCount(project)
	if err != nil {
		return nil, err
	}

	shiftRows, err := database.GetScheduleShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule shifts: %w", err)
	}
	if len(shiftRows) == 0 {
		return nil, fmt.Errorf("no schedule found - please generate a schedule first")
	}

	assignmentRows, err := database.GetScheduleAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule assignments: %w", err)
	}

	alertRows, err := database.GetScheduleAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule alerts: %w", err)
	}

	logger.Debug("Rebuilding stored schedule",
		zap.String("project_id", project.ID),
		zap.Int("shifts", len(shiftRows)),
		zap.Int("assignments", len(assignmentRows)))

	shifts := rebuildShifts(shiftRows, assignmentRows)
	alerts := rebuildAlerts(alertRows)

	owner := toModelProject(*project)
	return &ViewScheduleResult{
		Project: &owner,
		Days:    days,
		Result:  scheduler.Assemble(days, shifts, alerts),
	}, nil
}

// rebuildShifts reconstructs engine shifts from persisted rows and derives
// their render labels.
func rebuildShifts(shiftRows []db.ScheduleShift, assignmentRows []db.ScheduleAssignment) []*scheduler.Shift {
	byShift := make(map[string][]db.ScheduleAssignment)
	for _, row := range assignmentRows {
		byShift[row.ShiftID] = append(byShift[row.ShiftID], row)
	}

	shifts := make([]*scheduler.Shift, 0, len(shiftRows))
	for _, row := range shiftRows {
		shift := &scheduler.Shift{
			StartDay:  row.StartDay,
			StartHour: row.StartHour,
			EndDay:    row.EndDay,
			EndHour:   row.EndHour,
			Cells:     shiftCells(row),
			Filled:    row.Filled,
		}

		for _, arow := range byShift[row.ID] {
			shift.Assignments = append(shift.Assignments, scheduler.Assignment{
				AgentID:        arow.AgentID,
				AgentName:      arow.AgentName,
				Start:          arow.StartTenths,
				Length:         arow.LengthTenths,
				Classification: scheduler.Classification(arow.Classification),
				Unfilled:       arow.Unfilled,
			})
		}

		if len(shift.Assignments) == 0 && !shift.Filled {
			shift.Details = []string{scheduler.UnfillableLabel}
		} else {
			shift.Details = scheduler.FormatAssignments(shift.Assignments)
		}

		shifts = append(shifts, shift)
	}

	return shifts
}

// shiftCells regenerates the contiguous hour cells spanned by a stored shift.
func shiftCells(row db.ScheduleShift) []scheduler.Cell {
	var cells []scheduler.Cell
	day, hour := row.StartDay, row.StartHour
	for day < row.EndDay || (day == row.EndDay && hour < row.EndHour) {
		cells = append(cells, scheduler.Cell{Day: day, Hour: hour})
		hour++
		if hour == scheduler.HoursPerDay {
			hour = 0
			day++
		}
	}
	return cells
}

func rebuildAlerts(alertRows []db.ScheduleAlert) []scheduler.Alert {
	alerts := make([]scheduler.Alert, 0, len(alertRows))
	for _, row := range alertRows {
		alerts = append(alerts, scheduler.Alert{
			Severity: scheduler.AlertSeverity(row.Severity),
			Day:      row.DayIndex,
			Window:   row.Window,
			Message:  row.Message,
		})
	}
	return alerts
}
