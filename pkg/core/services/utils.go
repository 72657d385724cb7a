package services

import (
	"fmt"
	"time"

	"github.com/phuture/fudashi/pkg/core/model"
	"github.com/phuture/fudashi/pkg/core/scheduler"
	"github.com/phuture/fudashi/pkg/db"
)

// toModelAgent converts a database record into the domain agent.
func toModelAgent(a db.Agent) model.Agent {
	return model.Agent{
		ID:          a.ID,
		Name:        a.Name,
		TargetHours: a.TargetHours,
		MaxHours:    a.MaxHours,
	}
}

// toModelProject converts a database record into the domain project.
func toModelProject(p db.Project) model.Project {
	return model.Project{
		ID:        p.ID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}

// findLatestProject finds the project with the most recent start date
func findLatestProject(projects []db.Project) *db.Project {
	if len(projects) == 0 {
		return nil
	}

	latest := &projects[0]
	latestDate, err := time.Parse("2006-01-02", latest.StartDate)
	if err != nil {
		return latest
	}

	for i := 1; i < len(projects); i++ {
		currentDate, err := time.Parse("2006-01-02", projects[i].StartDate)
		if err != nil {
			continue
		}

		if currentDate.After(latestDate) {
			latest = &projects[i]
			latestDate = currentDate
		}
	}

	return latest
}

// projectDayCount returns the number of days in a project's inclusive date
// range, clamped to [0, 31].
func projectDayCount(project *db.Project) (int, error) {
	start, err := time.Parse("2006-01-02", project.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid project start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", project.EndDate)
	if err != nil {
		return 0, fmt.Errorf("invalid project end date: %w", err)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		days = 0
	}
	if days > scheduler.MaxProjectDays {
		days = scheduler.MaxProjectDays
	}
	return days, nil
}

// DayDate returns the calendar date of a zero-based day index within the
// project.
func DayDate(project *model.Project, dayIndex int) (time.Time, error) {
	start, err := time.Parse("2006-01-02", project.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid project start date: %w", err)
	}
	return start.AddDate(0, 0, dayIndex), nil
}

// buildAvailabilityGrid converts stored blocked cells into the engine grid.
func buildAvailabilityGrid(blocks []db.AvailabilityBlock) *scheduler.AvailabilityGrid {
	grid := scheduler.NewAvailabilityGrid()
	for _, b := range blocks {
		grid.SetBlocked(b.AgentID, b.DayIndex, b.Hour, true)
	}
	return grid
}

// buildOperatingGrid converts stored open cells into the engine grid.
func buildOperatingGrid(hours []db.OperatingHour) *scheduler.OperatingGrid {
	grid := scheduler.NewOperatingGrid()
	for _, h := range hours {
		grid.SetOpen(h.DayIndex, h.Hour, true)
	}
	return grid
}

// toSchedulerAgents converts roster records into engine agents with
// tenths-of-an-hour targets and caps.
func toSchedulerAgents(agents []db.Agent) []scheduler.Agent {
	out := make([]scheduler.Agent, len(agents))
	for i, a := range agents {
		out[i] = scheduler.Agent{
			ID:     a.ID,
			Name:   a.Name,
			Target: scheduler.Tenths(a.TargetHours),
			Max:    scheduler.Tenths(a.MaxHours),
		}
	}
	return out
}
