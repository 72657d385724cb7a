package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/phuture/fudashi/pkg/core/scheduler"
	"github.com/phuture/fudashi/pkg/db"
)

// AvailabilityStore defines the database operations needed to edit an
// agent's availability grid
type AvailabilityStore interface {
	GetAgents(ctx context.Context) ([]db.Agent, error)
	SetAvailabilityRange(ctx context.Context, agentID string, dayIndex, fromHour, toHour int, blocked bool) error
}

// SetAvailability marks the hours [fromHour, toHour) on one day as blocked or
// available for the named agent.
func SetAvailability(
	ctx context.Context,
	database AvailabilityStore,
	logger *zap.Logger,
	name string,
	dayIndex, fromHour, toHour int,
	blocked bool,
) error {
	if err := validateDayHourRange(dayIndex, fromHour, toHour); err != nil {
		return err
	}

	agents, err := database.GetAgents(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch agents: %w", err)
	}

	agent, err := findAgentByName(agents, name)
	if err != nil {
		return err
	}

	logger.Info("Updating availability",
		zap.String("agent", agent.Name),
		zap.Int("day", dayIndex),
		zap.Int("from_hour", fromHour),
		zap.Int("to_hour", toHour),
		zap.Bool("blocked", blocked))

	if err := database.SetAvailabilityRange(ctx, agent.ID, dayIndex, fromHour, toHour, blocked); err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}

	return nil
}

// SetDayAvailability blocks or frees an agent's entire day.
func SetDayAvailability(
	ctx context.Context,
	database AvailabilityStore,
	logger *zap.Logger,
	name string,
	dayIndex int,
	blocked bool,
) error {
	return SetAvailability(ctx, database, logger, name, dayIndex, 0, scheduler.HoursPerDay, blocked)
}

// validateDayHourRange checks a day index and half-open hour range against
// the grid bounds.
func validateDayHourRange(dayIndex, fromHour, toHour int) error {
	if dayIndex < 0 || dayIndex >= scheduler.MaxProjectDays {
		return fmt.Errorf("day index %d out of range [0, %d)", dayIndex, scheduler.MaxProjectDays)
	}
	if fromHour < 0 || fromHour >= scheduler.HoursPerDay {
		return fmt.Errorf("from hour %d out of range [0, %d)", fromHour, scheduler.HoursPerDay)
	}
	if toHour <= fromHour || toHour > scheduler.HoursPerDay {
		return fmt.Errorf("to hour %d must be in (%d, %d]", toHour, fromHour, scheduler.HoursPerDay)
	}
	return nil
}
