package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phuture/fudashi/pkg/db"
)

type availabilityCall struct {
	agentID       string
	day, from, to int
	blocked       bool
}

// stubDatabase records availability writes; other store methods are never
// reached by these commands.
type stubDatabase struct {
	db.Database
	agents []db.Agent
	calls  []availabilityCall
}

func (s *stubDatabase) GetAgents(ctx context.Context) ([]db.Agent, error) {
	return s.agents, nil
}

func (s *stubDatabase) SetAvailabilityRange(ctx context.Context, agentID string, dayIndex, fromHour, toHour int, blocked bool) error {
	s.calls = append(s.calls, availabilityCall{agentID, dayIndex, fromHour, toHour, blocked})
	return nil
}

func newAvailabilityApp(stub *stubDatabase) *AppContext {
	return &AppContext{
		Database: stub,
		Logger:   zap.NewNop(),
		Ctx:      context.Background(),
	}
}

func TestSetAvailabilityCmd_DayLiterals(t *testing.T) {
	// ALL clears every block for the day, NONE blocks the whole day.
	tests := []struct {
		spec        string
		wantBlocked bool
	}{
		{"ALL", false},
		{"NONE", true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			stub := &stubDatabase{agents: []db.Agent{{ID: "a1", Name: "ALPHA"}}}
			cmd := SetAvailabilityCmd(newAvailabilityApp(stub))
			cmd.SetArgs([]string{"ALPHA", "2", tt.spec})

			require.NoError(t, cmd.Execute())

			require.Len(t, stub.calls, 1)
			call := stub.calls[0]
			assert.Equal(t, "a1", call.agentID)
			assert.Equal(t, 2, call.day)
			assert.Equal(t, 0, call.from)
			assert.Equal(t, 24, call.to)
			assert.Equal(t, tt.wantBlocked, call.blocked)
		})
	}
}

func TestSetAvailabilityCmd_HourRange(t *testing.T) {
	stub := &stubDatabase{agents: []db.Agent{{ID: "a1", Name: "ALPHA"}}}
	cmd := SetAvailabilityCmd(newAvailabilityApp(stub))
	cmd.SetArgs([]string{"ALPHA", "0", "9-17"})

	require.NoError(t, cmd.Execute())

	require.Len(t, stub.calls, 1)
	assert.Equal(t, availabilityCall{"a1", 0, 9, 17, true}, stub.calls[0])
}

func TestSetAvailabilityCmd_FreeFlag(t *testing.T) {
	stub := &stubDatabase{agents: []db.Agent{{ID: "a1", Name: "ALPHA"}}}
	cmd := SetAvailabilityCmd(newAvailabilityApp(stub))
	cmd.SetArgs([]string{"ALPHA", "0", "9-17", "--free"})

	require.NoError(t, cmd.Execute())

	require.Len(t, stub.calls, 1)
	assert.False(t, stub.calls[0].blocked)
}
