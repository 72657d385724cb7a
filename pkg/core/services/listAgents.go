package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/phuture/fudashi/pkg/core/model"
	"github.com/phuture/fudashi/pkg/core/scheduler"
	"github.com/phuture/fudashi/pkg/db"
)

// AgentSummary pairs a roster member with its live classification stats and
// the hours it holds in the stored schedule.
type AgentSummary struct {
	Agent          model.Agent
	Classification scheduler.Classification
	Flexibility    float64
	AvailableHours int
	ScheduledHours float64
}

// ListAgentsStore defines the database operations needed to list agents
type ListAgentsStore interface {
	GetProjects(ctx context.Context) ([]db.Project, error)
	GetAgents(ctx context.Context) ([]db.Agent, error)
	GetAvailabilityBlocks(ctx context.Context) ([]db.AvailabilityBlock, error)
	GetScheduleAssignments(ctx context.Context) ([]db.ScheduleAssignment, error)
}

// ListAgents returns the roster with classification stats recomputed against
// the latest project horizon and scheduled hours read from the stored run.
func ListAgents(ctx context.Context, database ListAgentsStore, logger *zap.Logger) ([]AgentSummary, error) {
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

	agents, err := database.GetAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agents: %w", err)
	}

	blocks, err := database.GetAvailabilityBlocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability blocks: %w", err)
	}

	assignments, err := database.GetScheduleAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule assignments: %w", err)
	}

	logger.Debug("Computing roster stats",
		zap.Int("agents", len(agents)),
		zap.Int("days", days),
		zap.Int("blocked_cells", len(blocks)))

	stats := scheduler.ClassifyAgents(toSchedulerAgents(agents), buildAvailabilityGrid(blocks), days)

	scheduledTenths := make(map[string]int)
	for _, a := range assignments {
		if a.Unfilled {
			continue
		}
		scheduledTenths[a.AgentID] += a.LengthTenths
	}

	summaries := make([]AgentSummary, len(agents))
	for i, agent := range agents {
		s := stats[agent.ID]
		summaries[i] = AgentSummary{
			Agent:          toModelAgent(agent),
			Classification: s.Classification,
			Flexibility:    s.FlexibilityScore,
			AvailableHours: s.AvailableHours,
			ScheduledHours: scheduler.Hours(scheduledTenths[agent.ID]),
		}
	}

	return summaries, nil
}
