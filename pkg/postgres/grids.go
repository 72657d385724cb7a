package postgres

import (
	"context"
	"fmt"

	"github.com/phuture/fudashi/pkg/db"
)

// GetAvailabilityBlocks retrieves every blocked hour cell across all agents.
func (d *DB) GetAvailabilityBlocks(ctx context.Context) ([]db.AvailabilityBlock, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT agent_id, day_index, hour
		FROM availability_block
		ORDER BY agent_id, day_index, hour
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability blocks: %w", err)
	}
	defer rows.Close()

	var blocks []db.AvailabilityBlock
	for rows.Next() {
		var b db.AvailabilityBlock
		if err := rows.Scan(&b.AgentID, &b.DayIndex, &b.Hour); err != nil {
			return nil, fmt.Errorf("failed to scan availability block: %w", err)
		}
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability blocks: %w", err)
	}

	return blocks, nil
}

// SetAvailabilityRange marks the hours [fromHour, toHour) on one day as
// blocked or available for an agent. Blocking inserts cells, unblocking
// deletes them.
func (d *DB) SetAvailabilityRange(ctx context.Context, agentID string, dayIndex, fromHour, toHour int, blocked bool) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if blocked {
		for hour := fromHour; hour < toHour; hour++ {
			_, err := tx.Exec(ctx, `
				INSERT INTO availability_block (agent_id, day_index, hour)
				VALUES ($1, $2, $3)
				ON CONFLICT DO NOTHING
			`, agentID, dayIndex, hour)
			if err != nil {
				return fmt.Errorf("failed to insert availability block: %w", err)
			}
		}
	} else {
		_, err := tx.Exec(ctx, `
			DELETE FROM availability_block
			WHERE agent_id = $1 AND day_index = $2 AND hour >= $3 AND hour < $4
		`, agentID, dayIndex, fromHour, toHour)
		if err != nil {
			return fmt.Errorf("failed to delete availability blocks: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetOperatingHours retrieves the open hour cells of the latest project's
// operating grid.
func (d *DB) GetOperatingHours(ctx context.Context) ([]db.OperatingHour, error) {
	projectID, err := d.latestProjectID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := d.pool.Query(ctx, `
		SELECT day_index, hour
		FROM operating_hour
		WHERE project_id = $1
		ORDER BY day_index, hour
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query operating hours: %w", err)
	}
	defer rows.Close()

	var hours []db.OperatingHour
	for rows.Next() {
		var h db.OperatingHour
		if err := rows.Scan(&h.DayIndex, &h.Hour); err != nil {
			return nil, fmt.Errorf("failed to scan operating hour: %w", err)
		}
		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operating hours: %w", err)
	}

	return hours, nil
}

// SetOperatingRange marks the hours [fromHour, toHour) on one day of the
// latest project's operating grid as open or closed.
func (d *DB) SetOperatingRange(ctx context.Context, dayIndex, fromHour, toHour int, open bool) error {
	projectID, err := d.latestProjectID(ctx)
	if err != nil {
		return err
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if open {
		for hour := fromHour; hour < toHour; hour++ {
			_, err := tx.Exec(ctx, `
				INSERT INTO operating_hour (project_id, day_index, hour)
				VALUES ($1, $2, $3)
				ON CONFLICT DO NOTHING
			`, projectID, dayIndex, hour)
			if err != nil {
				return fmt.Errorf("failed to insert operating hour: %w", err)
			}
		}
	} else {
		_, err := tx.Exec(ctx, `
			DELETE FROM operating_hour
			WHERE project_id = $1 AND day_index = $2 AND hour >= $3 AND hour < $4
		`, projectID, dayIndex, fromHour, toHour)
		if err != nil {
			return fmt.Errorf("failed to delete operating hours: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
