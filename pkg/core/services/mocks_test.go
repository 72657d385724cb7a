package services

import (
	"context"

	"github.com/phuture/fudashi/pkg/db"
)

// mockDatabase implements the service store interfaces for testing
type mockDatabase struct {
	projects           []db.Project
	agents             []db.Agent
	availabilityBlocks []db.AvailabilityBlock
	operatingHours     []db.OperatingHour
	scheduleShifts     []db.ScheduleShift
	scheduleAssigns    []db.ScheduleAssignment
	scheduleAlerts     []db.ScheduleAlert

	insertedProjects []db.Project
	insertedAgents   []db.Agent
	updatedAgents    map[string][2]float64
	deletedAgents    []string

	replacedShifts  []db.ScheduleShift
	replacedAssigns []db.ScheduleAssignment
	replacedAlerts  []db.ScheduleAlert
	replaceCalls    int

	getProjectsErr error
	getAgentsErr   error
	replaceErr     error
}

func (m *mockDatabase) GetProjects(ctx context.Context) ([]db.Project, error) {
	if m.getProjectsErr != nil {
		return nil, m.getProjectsErr
	}
	return m.projects, nil
}

func (m *mockDatabase) InsertProject(ctx context.Context, project *db.Project) error {
	m.insertedProjects = append(m.insertedProjects, *project)
	m.projects = append(m.projects, *project)
	return nil
}

func (m *mockDatabase) GetAgents(ctx context.Context) ([]db.Agent, error) {
	if m.getAgentsErr != nil {
		return nil, m.getAgentsErr
	}
	return m.agents, nil
}

func (m *mockDatabase) InsertAgent(ctx context.Context, agent *db.Agent) error {
	m.insertedAgents = append(m.insertedAgents, *agent)
	m.agents = append(m.agents, *agent)
	return nil
}

func (m *mockDatabase) UpdateAgentParams(ctx context.Context, agentID string, targetHours, maxHours float64) error {
	if m.updatedAgents == nil {
		m.updatedAgents = make(map[string][2]float64)
	}
	m.updatedAgents[agentID] = [2]float64{targetHours, maxHours}
	return nil
}

func (m *mockDatabase) DeleteAgent(ctx context.Context, agentID string) error {
	m.deletedAgents = append(m.deletedAgents, agentID)
	return nil
}

func (m *mockDatabase) GetAvailabilityBlocks(ctx context.Context) ([]db.AvailabilityBlock, error) {
	return m.availabilityBlocks, nil
}

func (m *mockDatabase) SetAvailabilityRange(ctx context.Context, agentID string, dayIndex, fromHour, toHour int, blocked bool) error {
	for hour := fromHour; hour < toHour; hour++ {
		if blocked {
			m.availabilityBlocks = append(m.availabilityBlocks, db.AvailabilityBlock{
				AgentID:  agentID,
				DayIndex: dayIndex,
				Hour:     hour,
			})
		}
	}
	return nil
}

func (m *mockDatabase) GetOperatingHours(ctx context.Context) ([]db.OperatingHour, error) {
	return m.operatingHours, nil
}

func (m *mockDatabase) SetOperatingRange(ctx context.Context, dayIndex, fromHour, toHour int, open bool) error {
	for hour := fromHour; hour < toHour; hour++ {
		if open {
			m.operatingHours = append(m.operatingHours, db.OperatingHour{
				DayIndex: dayIndex,
				Hour:     hour,
			})
		}
	}
	return nil
}

func (m *mockDatabase) GetScheduleShifts(ctx context.Context) ([]db.ScheduleShift, error) {
	return m.scheduleShifts, nil
}

func (m *mockDatabase) GetScheduleAssignments(ctx context.Context) ([]db.ScheduleAssignment, error) {
	return m.scheduleAssigns, nil
}

func (m *mockDatabase) GetScheduleAlerts(ctx context.Context) ([]db.ScheduleAlert, error) {
	return m.scheduleAlerts, nil
}

func (m *mockDatabase) ReplaceSchedule(ctx context.Context, shifts []db.ScheduleShift, assignments []db.ScheduleAssignment, alerts []db.ScheduleAlert) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaceCalls++
	m.replacedShifts = shifts
	m.replacedAssigns = assignments
	m.replacedAlerts = alerts
	return nil
}
