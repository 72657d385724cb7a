package scheduler

import "math"

// All durations and offsets inside the engine are fixed-point tenths of an hour.
// Grid cells are whole hours (10 tenths); assignment lengths and chunk offsets
// may be fractional. Integer tenths keep coverage arithmetic exact.
const (
	// MaxProjectDays is the hard ceiling on the project horizon.
	MaxProjectDays = 31

	// HoursPerDay is the number of hour cells per calendar day.
	HoursPerDay = 24

	tenthsPerHour = 10
	tenthsPerDay  = HoursPerDay * tenthsPerHour

	// minBlockTenths is the minimum length of any agent assignment (3.5h).
	minBlockTenths = 35

	// maxBlockTenths is the maximum length of any single assignment (8h).
	maxBlockTenths = 80

	// weeklyCapTenths is the hard per-agent cap within one 7-day window (40h).
	weeklyCapTenths = 400

	// dailyCapTenths is the per-agent flexible-hours cap per calendar day (8h).
	dailyCapTenths = 80

	// restTenths is the minimum gap between an agent's consecutive
	// flexible assignments (11h).
	restTenths = 110
)

// Tenths converts fractional hours to integer tenths of an hour.
func Tenths(hours float64) int {
	return int(math.Round(hours * tenthsPerHour))
}

// Hours converts integer tenths back to fractional hours.
func Hours(tenths int) float64 {
	return float64(tenths) / tenthsPerHour
}

// Classification partitions the roster for one scheduling run.
type Classification string

const (
	// ClassificationLimited marks agents whose blocked-hour count exceeds
	// the roster average. They are placed first.
	ClassificationLimited Classification = "limited"

	// ClassificationFlexible marks every agent not classified limited.
	ClassificationFlexible Classification = "flexible"

	// ClassificationUnknown is used for unfilled sentinel assignments.
	ClassificationUnknown Classification = "unknown"
)

// Agent is the engine's view of a roster member. Target and Max are in tenths.
type Agent struct {
	ID     string
	Name   string
	Target int
	Max    int
}

// AgentStats is the classifier output for one agent.
type AgentStats struct {
	// AvailableHours and UnavailableHours are whole-hour cell counts over
	// the full day x hour horizon.
	AvailableHours   int
	UnavailableHours int

	// FlexibilityScore is the percentage of the horizon the agent is
	// available for (0 when the horizon is empty).
	FlexibilityScore float64

	Classification Classification
}

// Cell is a single (day, hour) slot in the project horizon.
type Cell struct {
	Day  int
	Hour int
}

// AbsoluteStart returns the cell's start offset from day 0 in tenths.
func (c Cell) AbsoluteStart() int {
	return c.Day*tenthsPerDay + c.Hour*tenthsPerHour
}

// AvailabilityGrid records blocked (agent, day, hour) cells. Absent entries
// default to available.
type AvailabilityGrid struct {
	blocked map[string]*[MaxProjectDays][HoursPerDay]bool
}

// NewAvailabilityGrid creates an empty availability grid.
func NewAvailabilityGrid() *AvailabilityGrid {
	return &AvailabilityGrid{blocked: make(map[string]*[MaxProjectDays][HoursPerDay]bool)}
}

// SetBlocked marks a single cell blocked or available for an agent.
// Out-of-bounds cells are ignored.
func (g *AvailabilityGrid) SetBlocked(agentID string, day, hour int, blocked bool) {
	if day < 0 || day >= MaxProjectDays || hour < 0 || hour >= HoursPerDay {
		return
	}
	cells, ok := g.blocked[agentID]
	if !ok {
		cells = &[MaxProjectDays][HoursPerDay]bool{}
		g.blocked[agentID] = cells
	}
	cells[day][hour] = blocked
}

// Available reports whether the agent is free in the given cell.
func (g *AvailabilityGrid) Available(agentID string, day, hour int) bool {
	cells, ok := g.blocked[agentID]
	if !ok {
		return true
	}
	if day < 0 || day >= MaxProjectDays || hour < 0 || hour >= HoursPerDay {
		return true
	}
	return !cells[day][hour]
}

// RemoveAgent drops all availability data for an agent.
func (g *AvailabilityGrid) RemoveAgent(agentID string) {
	delete(g.blocked, agentID)
}

// OperatingGrid records which (day, hour) cells require staffing. Absent
// entries default to closed.
type OperatingGrid struct {
	open [MaxProjectDays][HoursPerDay]bool
}

// NewOperatingGrid creates an empty operating grid.
func NewOperatingGrid() *OperatingGrid {
	return &OperatingGrid{}
}

// SetOpen marks a single cell open or closed. Out-of-bounds cells are ignored.
func (g *OperatingGrid) SetOpen(day, hour int, open bool) {
	if day < 0 || day >= MaxProjectDays || hour < 0 || hour >= HoursPerDay {
		return
	}
	g.open[day][hour] = open
}

// Open reports whether the given cell requires staffing.
func (g *OperatingGrid) Open(day, hour int) bool {
	if day < 0 || day >= MaxProjectDays || hour < 0 || hour >= HoursPerDay {
		return false
	}
	return g.open[day][hour]
}

// Assignment is one agent's block of work inside a shift. Start and Length
// are tenths measured from the shift start.
type Assignment struct {
	AgentID        string
	AgentName      string
	Start          int
	Length         int
	Classification Classification

	// Unfilled marks a sentinel block no agent could take. Sentinels consume
	// no agent counters.
	Unfilled bool
}

// Shift is a maximal contiguous run of open operating cells.
type Shift struct {
	StartDay  int
	StartHour int

	// EndDay and EndHour derive from the last cell; EndHour is exclusive.
	EndDay  int
	EndHour int

	// Cells is the ordered contiguous (day, hour) sequence covered by
	// this shift.
	Cells []Cell

	// Assignments is ordered by start offset after allocation.
	Assignments []Assignment

	// Details are the render-ready labels, one per assignment (or the
	// single unfillable sentinel detail).
	Details []string

	// Filled is true when assignments cover the full duration.
	Filled bool
}

// DurationTenths is the shift length in tenths (one cell = one hour).
func (s *Shift) DurationTenths() int {
	return len(s.Cells) * tenthsPerHour
}

// DurationHours is the shift length in whole hours.
func (s *Shift) DurationHours() int {
	return len(s.Cells)
}

// Overnight reports whether the shift crosses a day boundary.
func (s *Shift) Overnight() bool {
	return s.EndDay > s.StartDay
}

// AlertSeverity distinguishes hard errors from coverage warnings.
type AlertSeverity string

const (
	AlertError   AlertSeverity = "error"
	AlertWarning AlertSeverity = "warning"
)

// Alert is a run diagnostic attached to a shift's start day.
type Alert struct {
	Severity AlertSeverity
	Day      int

	// Window is the shift's formatted time range, e.g. "8AM-8PM".
	Window string

	Message string
}

// DaySchedule holds the ordered shifts starting on one day.
type DaySchedule struct {
	Day    int
	Shifts []*Shift
}

// Schedule is the terminal artifact of one run: every day in the horizon is
// present, even with zero shifts.
type Schedule struct {
	Days []DaySchedule
}

// Result packages a completed run.
type Result struct {
	Schedule *Schedule
	Alerts   []Alert
}
