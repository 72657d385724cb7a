package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/phuture/fudashi/internal/config"
	"github.com/phuture/fudashi/pkg/core/model"
	"github.com/phuture/fudashi/pkg/core/scheduler"
	"github.com/phuture/fudashi/pkg/db"
)

// DefineProjectResult represents the result of defining a new project
type DefineProjectResult struct {
	Project   *model.Project
	Days      int
	OpenHours int
}

// DefineProjectStore defines the database operations needed to define a project
type DefineProjectStore interface {
	InsertProject(ctx context.Context, project *db.Project) error
	SetOperatingRange(ctx context.Context, dayIndex, fromHour, toHour int, open bool) error
}

// DefineProject creates a new project covering the inclusive date range and
// paints the configured operating templates onto its operating grid.
func DefineProject(
	ctx context.Context,
	database DefineProjectStore,
	cfg *config.Config,
	logger *zap.Logger,
	startDate, endDate string,
) (*DefineProjectResult, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	// The horizon clamps to [0, 31] days rather than rejecting odd ranges.
	// An inverted range yields an empty horizon; a long one is truncated.
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		days = 0
	}
	if days > scheduler.MaxProjectDays {
		days = scheduler.MaxProjectDays
	}

	project := &db.Project{
		ID:        uuid.New().String(),
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}

	logger.Info("Creating new project",
		zap.String("id", project.ID),
		zap.String("start", project.StartDate),
		zap.String("end", project.EndDate),
		zap.Int("days", days))

	if err := database.InsertProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	openHours, err := paintOperatingTemplates(ctx, database, cfg.OperatingTemplates, start, days, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Project created successfully",
		zap.String("project_id", project.ID),
		zap.Int("days", days),
		zap.Int("open_hours", openHours))

	created := toModelProject(*project)
	return &DefineProjectResult{
		Project:   &created,
		Days:      days,
		OpenHours: openHours,
	}, nil
}

// paintOperatingTemplates expands each template's rrule over the project
// horizon and opens the matching hour ranges. Returns the number of hour
// cells opened.
func paintOperatingTemplates(
	ctx context.Context,
	database DefineProjectStore,
	templates []config.OperatingTemplate,
	start time.Time,
	days int,
	logger *zap.Logger,
) (int, error) {
	opened := 0
	horizonEnd := start.AddDate(0, 0, days)

	for i, tmpl := range templates {
		rule, err := rrule.StrToRRule(tmpl.RRule)
		if err != nil {
			return 0, fmt.Errorf("invalid rrule in operatingTemplates[%d]: %w", i, err)
		}
		rule.DTStart(start)

		occurrences := rule.Between(start, horizonEnd.Add(-time.Second), true)
		logger.Debug("Expanding operating template",
			zap.Int("template", i),
			zap.String("rrule", tmpl.RRule),
			zap.Int("occurrences", len(occurrences)))

		for _, occ := range occurrences {
			dayIndex := int(occ.Sub(start).Hours() / 24)
			if dayIndex < 0 || dayIndex >= days {
				continue
			}
			if err := database.SetOperatingRange(ctx, dayIndex, tmpl.StartHour, tmpl.EndHour, true); err != nil {
				return 0, fmt.Errorf("failed to set operating hours for day %d: %w", dayIndex, err)
			}
			opened += tmpl.EndHour - tmpl.StartHour
		}
	}

	return opened, nil
}
