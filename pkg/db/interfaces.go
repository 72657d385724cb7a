package db

import "context"

// ProjectStore defines the interface for project database operations
type ProjectStore interface {
	GetProjects(ctx context.Context) ([]Project, error)
	InsertProject(ctx context.Context, project *Project) error
}

// AgentStore defines the interface for agent database operations
type AgentStore interface {
	GetAgents(ctx context.Context) ([]Agent, error)
	InsertAgent(ctx context.Context, agent *Agent) error
	UpdateAgentParams(ctx context.Context, agentID string, targetHours, maxHours float64) error
	DeleteAgent(ctx context.Context, agentID string) error
}

// GridStore defines the interface for availability and operating grid
// operations. Range updates are inclusive of fromHour and exclusive of toHour.
type GridStore interface {
	GetAvailabilityBlocks(ctx context.Context) ([]AvailabilityBlock, error)
	SetAvailabilityRange(ctx context.Context, agentID string, dayIndex, fromHour, toHour int, blocked bool) error
	GetOperatingHours(ctx context.Context) ([]OperatingHour, error)
	SetOperatingRange(ctx context.Context, dayIndex, fromHour, toHour int, open bool) error
}

// ScheduleStore defines the interface for persisted run output. ReplaceSchedule
// swaps the previous run's shifts, assignments and alerts for the new set in
// one transaction; runs are never patched incrementally.
type ScheduleStore interface {
	GetScheduleShifts(ctx context.Context) ([]ScheduleShift, error)
	GetScheduleAssignments(ctx context.Context) ([]ScheduleAssignment, error)
	GetScheduleAlerts(ctx context.Context) ([]ScheduleAlert, error)
	ReplaceSchedule(ctx context.Context, shifts []ScheduleShift, assignments []ScheduleAssignment, alerts []ScheduleAlert) error
}

// Database defines the interface for all database operations, implemented by
// the Postgres-backed store.
type Database interface {
	ProjectStore
	AgentStore
	GridStore
	ScheduleStore
}
