package postgres

import (
	"context"
	"fmt"

	"github.com/phuture/fudashi/pkg/db"
)

// GetScheduleShifts retrieves the latest project's persisted shifts in run order.
func (d *DB) GetScheduleShifts(ctx context.Context) ([]db.ScheduleShift, error) {
	projectID, err := d.latestProjectID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, project_id, position, start_day, start_hour, end_day, end_hour, filled
		FROM schedule_shift
		WHERE project_id = $1
		ORDER BY position
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.ScheduleShift
	for rows.Next() {
		var s db.ScheduleShift
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.Position, &s.StartDay, &s.StartHour, &s.EndDay, &s.EndHour, &s.Filled); err != nil {
			return nil, fmt.Errorf("failed to scan schedule shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule shifts: %w", err)
	}

	return shifts, nil
}

// GetScheduleAssignments retrieves all assignments belonging to the latest
// project's shifts, ordered within each shift.
func (d *DB) GetScheduleAssignments(ctx context.Context) ([]db.ScheduleAssignment, error) {
	projectID, err := d.latestProjectID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := d.pool.Query(ctx, `
		SELECT a.id, a.shift_id, a.position, a.agent_id, a.agent_name,
		       a.start_tenths, a.length_tenths, a.classification, a.unfilled
		FROM schedule_assignment a
		JOIN schedule_shift s ON s.id = a.shift_id
		WHERE s.project_id = $1
		ORDER BY s.position, a.position
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.ScheduleAssignment
	for rows.Next() {
		var a db.ScheduleAssignment
		if err := rows.Scan(&a.ID, &a.ShiftID, &a.Position, &a.AgentID, &a.AgentName,
			&a.StartTenths, &a.LengthTenths, &a.Classification, &a.Unfilled); err != nil {
			return nil, fmt.Errorf("failed to scan schedule assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule assignments: %w", err)
	}

	return assignments, nil
}

// GetScheduleAlerts retrieves the latest project's run alerts in run order.
func (d *DB) GetScheduleAlerts(ctx context.Context) ([]db.ScheduleAlert, error) {
	projectID, err := d.latestProjectID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, project_id, position, severity, day_index, window_label, message
		FROM schedule_alert
		WHERE project_id = $1
		ORDER BY position
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule alerts: %w", err)
	}
	defer rows.Close()

	var alerts []db.ScheduleAlert
	for rows.Next() {
		var a db.ScheduleAlert
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.Position, &a.Severity, &a.DayIndex, &a.Window, &a.Message); err != nil {
			return nil, fmt.Errorf("failed to scan schedule alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule alerts: %w", err)
	}

	return alerts, nil
}

// ReplaceSchedule swaps the latest project's stored run for a new one in a
// single transaction. Assignment rows cascade when their shifts are deleted.
func (d *DB) ReplaceSchedule(ctx context.Context, shifts []db.ScheduleShift, assignments []db.ScheduleAssignment, alerts []db.ScheduleAlert) error {
	projectID, err := d.latestProjectID(ctx)
	if err != nil {
		return err
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM schedule_shift WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to clear schedule shifts: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM schedule_alert WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to clear schedule alerts: %w", err)
	}

	for _, s := range shifts {
		_, err := tx.Exec(ctx, `
			INSERT INTO schedule_shift (id, project_id, position, start_day, start_hour, end_day, end_hour, filled)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.ID, s.ProjectID, s.Position, s.StartDay, s.StartHour, s.EndDay, s.EndHour, s.Filled)
		if err != nil {
			return fmt.Errorf("failed to insert schedule shift: %w", err)
		}
	}

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO schedule_assignment (id, shift_id, position, agent_id, agent_name, start_tenths, length_tenths, classification, unfilled)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, a.ID, a.ShiftID, a.Position, a.AgentID, a.AgentName, a.StartTenths, a.LengthTenths, a.Classification, a.Unfilled)
		if err != nil {
			return fmt.Errorf("failed to insert schedule assignment: %w", err)
		}
	}

	for _, a := range alerts {
		_, err := tx.Exec(ctx, `
			INSERT INTO schedule_alert (id, project_id, position, severity, day_index, window_label, message)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, a.ID, a.ProjectID, a.Position, a.Severity, a.DayIndex, a.Window, a.Message)
		if err != nil {
			return fmt.Errorf("failed to insert schedule alert: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
