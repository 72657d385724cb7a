package postgres

import (
	"context"
	"fmt"

	"github.com/phuture/fudashi/pkg/db"
)

// GetProjects retrieves all project records, newest first.
func (d *DB) GetProjects(ctx context.Context) ([]db.Project, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, start_date::text, end_date::text
		FROM project
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []db.Project
	for rows.Next() {
		var p db.Project
		if err := rows.Scan(&p.ID, &p.StartDate, &p.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// InsertProject inserts a project record
func (d *DB) InsertProject(ctx context.Context, project *db.Project) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO project (id, start_date, end_date)
		VALUES ($1, $2, $3)
	`, project.ID, project.StartDate, project.EndDate)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

// latestProjectID returns the ID of the most recently created project.
func (d *DB) latestProjectID(ctx context.Context) (string, error) {
	var id string
	err := d.pool.QueryRow(ctx, `
		SELECT id FROM project ORDER BY created_at DESC LIMIT 1
	`).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to find latest project: %w", err)
	}
	return id, nil
}
