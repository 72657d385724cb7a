package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/phuture/fudashi/pkg/core/model"
	"github.com/phuture/fudashi/pkg/db"
)

// AgentParamsStore defines the database operations needed to update or
// remove an agent
type AgentParamsStore interface {
	GetAgents(ctx context.Context) ([]db.Agent, error)
	UpdateAgentParams(ctx context.Context, agentID string, targetHours, maxHours float64) error
	DeleteAgent(ctx context.Context, agentID string) error
}

// findAgentByName resolves an agent record by case-insensitive name.
func findAgentByName(agents []db.Agent, name string) (*db.Agent, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i := range agents {
		if agents[i].Name == name {
			return &agents[i], nil
		}
	}
	return nil, fmt.Errorf("agent %s not found", name)
}

// SetAgentParams updates an agent's target and maximum hours. A zero or
// negative value keeps the stored one.
func SetAgentParams(
	ctx context.Context,
	database AgentParamsStore,
	logger *zap.Logger,
	name string,
	targetHours, maxHours float64,
) (*model.Agent, error) {
	agents, err := database.GetAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agents: %w", err)
	}

	agent, err := findAgentByName(agents, name)
	if err != nil {
		return nil, err
	}

	if targetHours > 0 {
		agent.TargetHours = targetHours
	}
	if maxHours > 0 {
		agent.MaxHours = maxHours
	}

	logger.Info("Updating agent parameters",
		zap.String("id", agent.ID),
		zap.String("name", agent.Name),
		zap.Float64("target_hours", agent.TargetHours),
		zap.Float64("max_hours", agent.MaxHours))

	if err := database.UpdateAgentParams(ctx, agent.ID, agent.TargetHours, agent.MaxHours); err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	result := toModelAgent(*agent)
	return &result, nil
}

// RemoveAgent deletes an agent and, through the store, its availability
// entries. Persisted schedules keep their historical assignment rows.
func RemoveAgent(
	ctx context.Context,
	database AgentParamsStore,
	logger *zap.Logger,
	name string,
) (*model.Agent, error) {
	agents, err := database.GetAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agents: %w", err)
	}

	agent, err := findAgentByName(agents, name)
	if err != nil {
		return nil, err
	}

	logger.Info("Removing agent", zap.String("id", agent.ID), zap.String("name", agent.Name))

	if err := database.DeleteAgent(ctx, agent.ID); err != nil {
		return nil, fmt.Errorf("failed to delete agent: %w", err)
	}

	result := toModelAgent(*agent)
	return &result, nil
}
