package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phuture/fudashi/internal/config"
	"github.com/phuture/fudashi/pkg/core/model"
	"github.com/phuture/fudashi/pkg/db"
)

// AddAgentStore defines the database operations needed to add an agent
type AddAgentStore interface {
	GetAgents(ctx context.Context) ([]db.Agent, error)
	InsertAgent(ctx context.Context, agent *db.Agent) error
}

// AddAgent registers a new roster member. Names are stored uppercase; zero or
// negative hour parameters fall back to the configured defaults.
func AddAgent(
	ctx context.Context,
	database AddAgentStore,
	cfg *config.Config,
	logger *zap.Logger,
	name string,
	targetHours, maxHours float64,
) (*model.Agent, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("agent name must not be empty")
	}

	if targetHours <= 0 {
		targetHours = cfg.DefaultTargetHours
	}
	if maxHours <= 0 {
		maxHours = cfg.DefaultMaxHours
	}

	existing, err := database.GetAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agents: %w", err)
	}
	for _, a := range existing {
		if a.Name == name {
			return nil, fmt.Errorf("agent %s already exists", name)
		}
	}

	agent := &db.Agent{
		ID:          uuid.New().String(),
		Name:        name,
		TargetHours: targetHours,
		MaxHours:    maxHours,
	}

	logger.Info("Adding agent",
		zap.String("id", agent.ID),
		zap.String("name", agent.Name),
		zap.Float64("target_hours", agent.TargetHours),
		zap.Float64("max_hours", agent.MaxHours))

	if err := database.InsertAgent(ctx, agent); err != nil {
		return nil, fmt.Errorf("failed to insert agent: %w", err)
	}

	result := toModelAgent(*agent)
	return &result, nil
}
