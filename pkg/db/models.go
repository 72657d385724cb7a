package db

// Project represents a database project record
type Project struct {
	ID        string
	StartDate string
	EndDate   string
}

// Agent represents a database agent record
type Agent struct {
	ID          string
	Name        string
	TargetHours float64
	MaxHours    float64
}

// AvailabilityBlock represents one blocked (agent, day, hour) cell.
// Presence of a row means blocked; absence means available.
type AvailabilityBlock struct {
	AgentID  string
	DayIndex int
	Hour     int
}

// OperatingHour represents one open (day, hour) cell of the operating grid.
// Presence of a row means open; absence means closed.
type OperatingHour struct {
	DayIndex int
	Hour     int
}

// ScheduleShift represents a persisted shift from the latest run
type ScheduleShift struct {
	ID        string
	ProjectID string
	Position  int
	StartDay  int
	StartHour int
	EndDay    int
	EndHour   int
	Filled    bool
}

// ScheduleAssignment represents a persisted assignment within a shift.
// StartTenths and LengthTenths are tenths of an hour from the shift start.
type ScheduleAssignment struct {
	ID             string
	ShiftID        string
	Position       int
	AgentID        string // empty for unfilled sentinels
	AgentName      string
	StartTenths    int
	LengthTenths   int
	Classification string
	Unfilled       bool
}

// ScheduleAlert represents a persisted run alert
type ScheduleAlert struct {
	ID        string
	ProjectID string
	Position  int
	Severity  string
	DayIndex  int
	Window    string
	Message   string
}
