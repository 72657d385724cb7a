package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phuture/fudashi/pkg/core/model"
	"github.com/phuture/fudashi/pkg/core/scheduler"
	"github.com/phuture/fudashi/pkg/db"
	"github.com/phuture/fudashi/pkg/metrics"
)

// GenerateScheduleResult contains the allocation run output
type GenerateScheduleResult struct {
	Project *model.Project
	Days    int
	Stats   map[string]scheduler.AgentStats
	Result  *scheduler.Result

	ShiftCount    int
	FilledCount   int
	HoursRequired float64
	HoursCovered  float64
	HoursUnfilled float64
	Persisted     bool
}

// GenerateScheduleStore defines the database operations needed to run the
// allocator
type GenerateScheduleStore interface {
	GetProjects(ctx context.Context) ([]db.Project, error)
	GetAgents(ctx context.Context) ([]db.Agent, error)
	GetAvailabilityBlocks(ctx context.Context) ([]db.AvailabilityBlock, error)
	GetOperatingHours(ctx context.Context) ([]db.OperatingHour, error)
	ReplaceSchedule(ctx context.Context, shifts []db.ScheduleShift, assignments []db.ScheduleAssignment, alerts []db.ScheduleAlert) error
}

// GenerateSchedule runs the full allocation pipeline against the latest
// project: classify the roster, segment the operating grid into shifts,
// allocate agents and assemble the per-day schedule. The stored schedule is
// replaced unless dryRun is set.
func GenerateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	logger *zap.Logger,
	dryRun bool,
) (*GenerateScheduleResult, error) {
	started := time.Now()
	metrics.ResetRunGauges()

	logger.Debug("Starting schedule generation", zap.Bool("dry_run", dryRun))

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
	logger.Debug("Using latest project", zap.String("id", project.ID), zap.Int("days", days))

	agents, err := database.GetAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agents: %w", err)
	}

	blocks, err := database.GetAvailabilityBlocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability blocks: %w", err)
	}

	operatingHours, err := database.GetOperatingHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch operating hours: %w", err)
	}

	engineAgents := toSchedulerAgents(agents)
	availability := buildAvailabilityGrid(blocks)

	logger.Debug("Classifying roster", zap.Int("agents", len(engineAgents)))
	stats := scheduler.ClassifyAgents(engineAgents, availability, days)

	logger.Debug("Segmenting operating grid", zap.Int("open_cells", len(operatingHours)))
	shifts := scheduler.SegmentOperatingWindows(buildOperatingGrid(operatingHours), days)
	logger.Info("Operating windows segmented", zap.Int("shifts", len(shifts)))

	outcome := scheduler.Allocate(scheduler.AllocationInput{
		Agents:       engineAgents,
		Stats:        stats,
		Availability: availability,
		Shifts:       shifts,
	})

	result := scheduler.Assemble(days, outcome.Shifts, outcome.Alerts)

	summary := summarizeRun(project, days, stats, result, outcome.Shifts)
	recordRunMetrics(summary, stats, time.Since(started))

	logger.Info("Allocation complete",
		zap.Int("shifts", summary.ShiftCount),
		zap.Int("filled", summary.FilledCount),
		zap.Float64("hours_required", summary.HoursRequired),
		zap.Float64("hours_covered", summary.HoursCovered),
		zap.Int("alerts", len(result.Alerts)))

	if dryRun {
		logger.Info("Dry run - schedule not persisted")
		return summary, nil
	}

	shiftRows, assignmentRows, alertRows := scheduleRows(project.ID, outcome.Shifts, result.Alerts)
	if err := database.ReplaceSchedule(ctx, shiftRows, assignmentRows, alertRows); err != nil {
		return nil, fmt.Errorf("failed to persist schedule: %w", err)
	}
	summary.Persisted = true

	logger.Info("Schedule persisted",
		zap.String("project_id", project.ID),
		zap.Int("shifts", len(shiftRows)),
		zap.Int("assignments", len(assignmentRows)))

	return summary, nil
}

// summarizeRun computes the coverage totals for a completed run.
func summarizeRun(
	project *db.Project,
	days int,
	stats map[string]scheduler.AgentStats,
	result *scheduler.Result,
	shifts []*scheduler.Shift,
) *GenerateScheduleResult {
	owner := toModelProject(*project)
	summary := &GenerateScheduleResult{
		Project:    &owner,
		Days:       days,
		Stats:      stats,
		Result:     result,
		ShiftCount: len(shifts),
	}

	var requiredTenths, coveredTenths, unfilledTenths int
	for _, shift := range shifts {
		requiredTenths += shift.DurationTenths()
		if shift.Filled {
			summary.FilledCount++
		}
		for _, assign := range shift.Assignments {
			if assign.Unfilled {
				unfilledTenths += assign.Length
			} else {
				coveredTenths += assign.Length
			}
		}
	}

	summary.HoursRequired = scheduler.Hours(requiredTenths)
	summary.HoursCovered = scheduler.Hours(coveredTenths)
	summary.HoursUnfilled = scheduler.Hours(unfilledTenths)

	return summary
}

// recordRunMetrics publishes the run totals to the metrics registry.
func recordRunMetrics(summary *GenerateScheduleResult, stats map[string]scheduler.AgentStats, elapsed time.Duration) {
	metrics.RunsTotal.Inc()
	metrics.RunDurationSeconds.Observe(elapsed.Seconds())

	metrics.ShiftsTotal.Set(float64(summary.ShiftCount))
	metrics.ShiftsFilled.Set(float64(summary.FilledCount))
	metrics.HoursRequired.Set(summary.HoursRequired)
	metrics.HoursCovered.Set(summary.HoursCovered)
	metrics.HoursUnfilled.Set(summary.HoursUnfilled)

	for _, s := range stats {
		metrics.AgentsByClassification.WithLabelValues(string(s.Classification)).Inc()
	}
	for _, alert := range summary.Result.Alerts {
		metrics.AlertsTotal.WithLabelValues(string(alert.Severity)).Inc()
	}
}

// scheduleRows flattens a run into persistable records with stable positions.
func scheduleRows(
	projectID string,
	shifts []*scheduler.Shift,
	alerts []scheduler.Alert,
) ([]db.ScheduleShift, []db.ScheduleAssignment, []db.ScheduleAlert) {
	shiftRows := make([]db.ScheduleShift, 0, len(shifts))
	var assignmentRows []db.ScheduleAssignment

	for pos, shift := range shifts {
		shiftID := uuid.New().String()
		shiftRows = append(shiftRows, db.ScheduleShift{
			ID:        shiftID,
			ProjectID: projectID,
			Position:  pos,
			StartDay:  shift.StartDay,
			StartHour: shift.StartHour,
			EndDay:    shift.EndDay,
			EndHour:   shift.EndHour,
			Filled:    shift.Filled,
		})

		for apos, assign := range shift.Assignments {
			assignmentRows = append(assignmentRows, db.ScheduleAssignment{
				ID:             uuid.New().String(),
				ShiftID:        shiftID,
				Position:       apos,
				AgentID:        assign.AgentID,
				AgentName:      assign.AgentName,
				StartTenths:    assign.Start,
				LengthTenths:   assign.Length,
				Classification: string(assign.Classification),
				Unfilled:       assign.Unfilled,
			})
		}
	}

	alertRows := make([]db.ScheduleAlert, 0, len(alerts))
	for pos, alert := range alerts {
		alertRows = append(alertRows, db.ScheduleAlert{
			ID:        uuid.New().String(),
			ProjectID: projectID,
			Position:  pos,
			Severity:  string(alert.Severity),
			DayIndex:  alert.Day,
			Window:    alert.Window,
			Message:   alert.Message,
		})
	}

	return shiftRows, assignmentRows, alertRows
}
