package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// OperatingHoursStore defines the database operations needed to edit the
// operating grid
type OperatingHoursStore interface {
	SetOperatingRange(ctx context.Context, dayIndex, fromHour, toHour int, open bool) error
}

// SetOperatingHours opens or closes the hours [fromHour, toHour) on one day
// of the latest project's operating grid.
func SetOperatingHours(
	ctx context.Context,
	database OperatingHoursStore,
	logger *zap.Logger,
	dayIndex, fromHour, toHour int,
	open bool,
) error {
	if err := validateDayHourRange(dayIndex, fromHour, toHour); err != nil {
		return err
	}

	logger.Info("Updating operating hours",
		zap.Int("day", dayIndex),
		zap.Int("from_hour", fromHour),
		zap.Int("to_hour", toHour),
		zap.Bool("open", open))

	if err := database.SetOperatingRange(ctx, dayIndex, fromHour, toHour, open); err != nil {
		return fmt.Errorf("failed to update operating hours: %w", err)
	}

	return nil
}
