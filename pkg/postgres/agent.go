package postgres

import (
	"context"
	"fmt"

	"github.com/phuture/fudashi/pkg/db"
)

// GetAgents retrieves all agent records ordered by name.
func (d *DB) GetAgents(ctx context.Context) ([]db.Agent, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, target_hours, max_hours
		FROM agent
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}
	defer rows.Close()

	var agents []db.Agent
	for rows.Next() {
		var a db.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.TargetHours, &a.MaxHours); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating agents: %w", err)
	}

	return agents, nil
}

// InsertAgent inserts an agent record
func (d *DB) InsertAgent(ctx context.Context, agent *db.Agent) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO agent (id, name, target_hours, max_hours)
		VALUES ($1, $2, $3, $4)
	`, agent.ID, agent.Name, agent.TargetHours, agent.MaxHours)
	if err != nil {
		return fmt.Errorf("failed to insert agent: %w", err)
	}
	return nil
}

// UpdateAgentParams updates an agent's target and maximum hours
func (d *DB) UpdateAgentParams(ctx context.Context, agentID string, targetHours, maxHours float64) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE agent SET target_hours = $2, max_hours = $3 WHERE id = $1
	`, agentID, targetHours, maxHours)
	if err != nil {
		return fmt.Errorf("failed to update agent %s: %w", agentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent %s not found", agentID)
	}
	return nil
}

// DeleteAgent removes an agent record. Availability blocks cascade.
func (d *DB) DeleteAgent(ctx context.Context, agentID string) error {
	tag, err := d.pool.Exec(ctx, `
		DELETE FROM agent WHERE id = $1
	`, agentID)
	if err != nil {
		return fmt.Errorf("failed to delete agent %s: %w", agentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent %s not found", agentID)
	}
	return nil
}
